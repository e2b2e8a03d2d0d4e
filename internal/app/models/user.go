package models

import (
	"time"
)

// RecentlyViewedCapacity bounds the most-recently-viewed course list
const RecentlyViewedCapacity = 10

// User is the only mutable record that survives a restart. The struct is
// persisted as-is, so Credential is stored at rest (as a bcrypt hash).
type User struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Credential      string            `json:"credential"`
	RecentlyViewed  []RecentView      `json:"recentlyViewed"`
	MostViewed      []CourseViewCount `json:"mostViewed"`
	CoursesLiked    IDSet             `json:"coursesLiked"`
	CoursesDisliked IDSet             `json:"coursesDisliked"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// RecentView is one entry of the MRU list
type RecentView struct {
	CourseID int64     `json:"courseId"`
	ViewedAt time.Time `json:"viewedAt"`
}

// CourseViewCount is one entry of the view-frequency ranking
type CourseViewCount struct {
	CourseID     int64     `json:"courseId"`
	ViewCount    int       `json:"viewCount"`
	LastViewedAt time.Time `json:"lastViewedAt"`
}

// Normalize fills nil collections, e.g. after decoding an older snapshot
func (u *User) Normalize() {
	if u.RecentlyViewed == nil {
		u.RecentlyViewed = []RecentView{}
	}
	if u.MostViewed == nil {
		u.MostViewed = []CourseViewCount{}
	}
	if u.CoursesLiked == nil {
		u.CoursesLiked = NewIDSet()
	}
	if u.CoursesDisliked == nil {
		u.CoursesDisliked = NewIDSet()
	}
}

// Clone returns a deep copy
func (u *User) Clone() *User {
	cp := *u
	cp.RecentlyViewed = append([]RecentView(nil), u.RecentlyViewed...)
	cp.MostViewed = append([]CourseViewCount(nil), u.MostViewed...)
	cp.CoursesLiked = u.CoursesLiked.Clone()
	cp.CoursesDisliked = u.CoursesDisliked.Clone()
	cp.Normalize()
	return &cp
}
