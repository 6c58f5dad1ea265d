package memories

import "time"

// Media types a memory can hold.
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Memory is one gallery entry. Files reference objects in blob storage;
// FileURLs carries the resolved download URLs and is filled per response,
// never stored.
type Memory struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Batch       string    `json:"batch"`
	Type        string    `json:"type"`
	Files       []string  `json:"files"`
	FileURLs    []string  `json:"fileUrls,omitempty"`
	UploadDate  time.Time `json:"uploadDate"`
	Uploader    string    `json:"uploader"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// SampleMemories is the gallery seed.
func SampleMemories() []Memory {
	return []Memory{
		{ID: 1, Title: "Graduation Day 2024", Description: "The most memorable day of our academic journey", Batch: "2024", Type: TypeImage, Files: []string{"graduation-2024.jpg"}, UploadDate: date("2024-05-15"), Uploader: "Admin", Views: 156, Likes: 89},
		{ID: 2, Title: "Fresher's Welcome", Description: "First day memories that started it all", Batch: "2024", Type: TypeVideo, Files: []string{"fresher-welcome.mp4"}, UploadDate: date("2024-08-20"), Uploader: "John Doe", Views: 234, Likes: 167},
		{ID: 3, Title: "Annual Sports Day", Description: "Victory, friendship, and unforgettable moments", Batch: "2023", Type: TypeImage, Files: []string{"sports-day-2023.jpg", "sports-winners.jpg"}, UploadDate: date("2024-02-10"), Uploader: "Admin", Views: 298, Likes: 178},
		{ID: 4, Title: "Tech Fest 2023", Description: "Innovation meets creativity", Batch: "2023", Type: TypeVideo, Files: []string{"tech-fest-highlights.mp4"}, UploadDate: date("2024-01-22"), Uploader: "Sarah Wilson", Views: 445, Likes: 289},
		{ID: 5, Title: "Cultural Night", Description: "Celebrating diversity through art and music", Batch: "2022", Type: TypeImage, Files: []string{"cultural-night-1.jpg", "cultural-night-2.jpg", "cultural-night-3.jpg"}, UploadDate: date("2024-03-05"), Uploader: "Mike Johnson", Views: 378, Likes: 245},
		{ID: 6, Title: "Farewell Ceremony", Description: "Goodbye is not forever, it's see you later", Batch: "2021", Type: TypeVideo, Files: []string{"farewell-ceremony.mp4"}, UploadDate: date("2024-04-18"), Uploader: "Admin", Views: 567, Likes: 423},
		{ID: 7, Title: "Campus Tour", Description: "Exploring every corner of our beloved campus", Batch: "2024", Type: TypeImage, Files: []string{"campus-tour-1.jpg", "campus-tour-2.jpg"}, UploadDate: date("2024-06-12"), Uploader: "Emma Davis", Views: 189, Likes: 134},
		{ID: 8, Title: "Study Group Sessions", Description: "Learning together, growing together", Batch: "2023", Type: TypeImage, Files: []string{"study-group.jpg"}, UploadDate: date("2024-07-08"), Uploader: "Alex Chen", Views: 267, Likes: 198},
	}
}
