package models

import "strings"

// MaterialType classifies a learning resource
type MaterialType string

const (
	MaterialTypeLink    MaterialType = "LINK"
	MaterialTypeLecture MaterialType = "LECTURE"
	MaterialTypeSlides  MaterialType = "SLIDES"
	MaterialTypeExam    MaterialType = "EXAM"
)

// MaterialTypes is the full set of allowed material types
var MaterialTypes = []MaterialType{
	MaterialTypeLink,
	MaterialTypeLecture,
	MaterialTypeSlides,
	MaterialTypeExam,
}

// ParseMaterialType matches s case-insensitively against the known types
func ParseMaterialType(s string) (MaterialType, bool) {
	for _, t := range MaterialTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// VoteDirection is the side of a material vote
type VoteDirection string

const (
	VoteUp   VoteDirection = "UP"
	VoteDown VoteDirection = "DOWN"
)

// ParseVoteDirection accepts "up"/"down" in any case
func ParseVoteDirection(s string) (VoteDirection, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(VoteUp):
		return VoteUp, true
	case string(VoteDown):
		return VoteDown, true
	}
	return "", false
}

// VoteState is the logical state of one (material, user) pair
type VoteState string

const (
	VoteStateNeutral  VoteState = "NEUTRAL"
	VoteStateLiked    VoteState = "LIKED"
	VoteStateDisliked VoteState = "DISLIKED"
)
