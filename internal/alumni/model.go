package alumni

// Record is a directory entry. Records are append-only: ids are assigned as
// count+1 at creation and stay unique because no delete path exists.
type Record struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Batch      string `json:"batch"`
	Department string `json:"department"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Avatar     string `json:"avatar"`
}

// CreateRequest is the add-alumni form payload.
type CreateRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Batch      string `json:"batch" validate:"required"`
	Department string `json:"department" validate:"required"`
	Company    string `json:"company"`
}

const defaultAvatar = "https://via.placeholder.com/50"

// SampleRecords is the directory's startup seed.
func SampleRecords() []Record {
	return []Record{
		{ID: 1, Name: "John Doe", Email: "john.doe@email.com", Phone: "+91-9876543210", Batch: "2022", Department: "CSE", Company: "Google", Position: "Software Engineer", Avatar: defaultAvatar},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@email.com", Phone: "+91-9876543211", Batch: "2023", Department: "ECE", Company: "Microsoft", Position: "Product Manager", Avatar: defaultAvatar},
		{ID: 3, Name: "Mike Johnson", Email: "mike.johnson@email.com", Phone: "+91-9876543212", Batch: "2021", Department: "ME", Company: "Tesla", Position: "Mechanical Engineer", Avatar: defaultAvatar},
		{ID: 4, Name: "Sarah Wilson", Email: "sarah.wilson@email.com", Phone: "+91-9876543213", Batch: "2024", Department: "CSE", Company: "Apple", Position: "iOS Developer", Avatar: defaultAvatar},
		{ID: 5, Name: "David Brown", Email: "david.brown@email.com", Phone: "+91-9876543214", Batch: "2022", Department: "ECE", Company: "Intel", Position: "Hardware Engineer", Avatar: defaultAvatar},
		{ID: 6, Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+91-9876543215", Batch: "2023", Department: "CSE", Company: "Netflix", Position: "Data Scientist", Avatar: defaultAvatar},
	}
}
