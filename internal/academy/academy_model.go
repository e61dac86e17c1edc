package academy

import "time"

// Academy is the tenant profile document in ams-academy. Collateral metadata
// is embedded; the binary assets live in object storage.
type Academy struct {
	AcademyID    string       `bson:"academyId" json:"academyId"`
	Name         string       `bson:"name" json:"name"`
	LogoURL      string       `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	ContactEmail string       `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	Phone        string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	Collaterals  []Collateral `bson:"collaterals,omitempty" json:"collaterals,omitempty"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Collateral is an uploaded marketing asset attached to the academy profile.
type Collateral struct {
	ID          string    `bson:"id" json:"id"`
	FileName    string    `bson:"fileName" json:"fileName"`
	ContentType string    `bson:"contentType" json:"contentType"`
	URL         string    `bson:"url" json:"url"`
	Size        int64     `bson:"size" json:"size"`
	UploadedBy  string    `bson:"uploadedBy" json:"uploadedBy"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// About is the public description document in ams-about.
type About struct {
	AcademyID string    `bson:"academyId" json:"academyId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Achievement is one entry in ams-achievement.
type Achievement struct {
	ID          string    `bson:"id" json:"id"`
	AcademyID   string    `bson:"academyId" json:"academyId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        string    `bson:"date,omitempty" json:"date,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// UpdateProfileRequest is the payload for profile upserts.
type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required"`
	LogoURL      string `json:"logoUrl"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// UpdateAboutRequest is the payload for about-page upserts.
type UpdateAboutRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateAchievementRequest is the payload for new achievements.
type CreateAchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}
