package models

import (
	"sort"
	"time"
)

// RecordView moves courseID to the front of the MRU list, drops the oldest
// entries beyond RecentlyViewedCapacity, and bumps the course in the ranking.
func (u *User) RecordView(courseID int64, at time.Time) {
	u.Normalize()
	u.pushRecent(courseID, at)
	u.bumpMostViewed(courseID, at)
}

func (u *User) pushRecent(courseID int64, at time.Time) {
	recent := make([]RecentView, 0, RecentlyViewedCapacity)
	recent = append(recent, RecentView{CourseID: courseID, ViewedAt: at})
	for _, rv := range u.RecentlyViewed {
		if rv.CourseID == courseID {
			continue
		}
		if len(recent) == RecentlyViewedCapacity {
			break
		}
		recent = append(recent, rv)
	}
	u.RecentlyViewed = recent
}

func (u *User) bumpMostViewed(courseID int64, at time.Time) {
	found := false
	for i := range u.MostViewed {
		if u.MostViewed[i].CourseID == courseID {
			u.MostViewed[i].ViewCount++
			u.MostViewed[i].LastViewedAt = at
			found = true
			break
		}
	}
	if !found {
		u.MostViewed = append(u.MostViewed, CourseViewCount{CourseID: courseID, ViewCount: 1, LastViewedAt: at})
	}
	SortMostViewed(u.MostViewed)
}

// SortMostViewed orders by view count descending. Equal counts fall back to
// the most recent view, then to the lower course id.
func SortMostViewed(counts []CourseViewCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		a, b := counts[i], counts[j]
		if a.ViewCount != b.ViewCount {
			return a.ViewCount > b.ViewCount
		}
		if !a.LastViewedAt.Equal(b.LastViewedAt) {
			return a.LastViewedAt.After(b.LastViewedAt)
		}
		return a.CourseID < b.CourseID
	})
}

// LikeCourse records a course preference. Repeating it changes nothing.
func (u *User) LikeCourse(courseID int64) {
	u.Normalize()
	u.CoursesDisliked.Remove(courseID)
	u.CoursesLiked.Add(courseID)
}

// DislikeCourse mirrors LikeCourse
func (u *User) DislikeCourse(courseID int64) {
	u.Normalize()
	u.CoursesLiked.Remove(courseID)
	u.CoursesDisliked.Add(courseID)
}
