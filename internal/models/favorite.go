package models

// FavoriteLink marks a mentor as favorited by a user. Existence-only: the
// (UserID, MentorID) pair is unique and carries no ordering or metadata.
type FavoriteLink struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	MentorID string `json:"mentorId"`
}

// FavoritesResponse lists the caller's favorited mentor ids.
type FavoritesResponse struct {
	MentorIDs []string `json:"mentorIds"`
}
