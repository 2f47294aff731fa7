package model

// Sample is one labeled drawing of the dataset. ID names its vector and
// raster files.
type Sample struct {
	ID          int    `json:"id"`
	Label       string `json:"label"`
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
}

// Manifest lists samples in the order their ids were assigned
type Manifest []Sample
