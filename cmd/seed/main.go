package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// RegisterPayload mirrors the registration form.
type RegisterPayload struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Batch            string `json:"batch"`
	Department       string `json:"department"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmPassword"`
	Terms            bool   `json:"terms"`
	RegistrationDate string `json:"registrationDate"`
}

var departments = []string{"CSE", "ECE", "ME", "CE", "EE"}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "portal base URL")
	count := flag.Int("count", 10, "number of fake alumni to register")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatal("cookie jar:", err)
	}
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	// Register one account we keep the session for, then fill the
	// directory through the authenticated API.
	me := fakeRegistration()
	registerUser(client, *baseURL, me)
	loginUser(client, *baseURL, me.Email, me.Password)

	for i := 0; i < *count; i++ {
		createAlumni(client, *baseURL)
	}

	createEvent(client, *baseURL)
	saveProfile(client, *baseURL, me)
	listAlumni(client, *baseURL)

	log.Println("seeding finished")
}

func fakeRegistration() RegisterPayload {
	password := "secret123"
	return RegisterPayload{
		FirstName:        gofakeit.FirstName(),
		LastName:         gofakeit.LastName(),
		Email:            gofakeit.Email(),
		Phone:            gofakeit.Numerify("##########"),
		Batch:            fmt.Sprintf("%d", gofakeit.Number(2015, 2025)),
		Department:       departments[gofakeit.Number(0, len(departments)-1)],
		Password:         password,
		ConfirmPassword:  password,
		Terms:            true,
		RegistrationDate: time.Now().UTC().Format(time.RFC3339),
	}
}

func registerUser(client *http.Client, baseURL string, payload RegisterPayload) {
	data, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("Error in registerUser:", err)
		return
	}
	defer resp.Body.Close()
	log.Printf("registerUser: %s status: %s", payload.Email, resp.Status)
}

func loginUser(client *http.Client, baseURL, email, password string) {
	credentials := map[string]string{"email": email, "password": password}
	data, _ := json.Marshal(credentials)
	resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal("Error in loginUser:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("loginUser: %s status: %s", email, resp.Status)
	}
	log.Printf("loginUser: %s logged in", email)
}

func createAlumni(client *http.Client, baseURL string) {
	payload := map[string]string{
		"name":       gofakeit.Name(),
		"email":      gofakeit.Email(),
		"phone":      gofakeit.Numerify("##########"),
		"batch":      fmt.Sprintf("%d", gofakeit.Number(2015, 2025)),
		"department": departments[gofakeit.Number(0, len(departments)-1)],
		"company":    gofakeit.Company(),
	}
	data, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/api/alumni", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("Error in createAlumni:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("createAlumni status:", resp.Status)
}

func createEvent(client *http.Client, baseURL string) {
	date := gofakeit.DateRange(time.Now(), time.Now().AddDate(1, 0, 0))
	payload := map[string]string{
		"title":       gofakeit.Sentence(3),
		"description": gofakeit.Sentence(8),
		"date":        date.Format("2006-01-02"),
		"time":        date.Format("15:04"),
		"location":    gofakeit.City(),
	}
	data, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/api/events", "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Println("Error in createEvent:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("createEvent status:", resp.Status)
}

func saveProfile(client *http.Client, baseURL string, me RegisterPayload) {
	payload := map[string]interface{}{
		"name":      me.FirstName + " " + me.LastName,
		"jobStatus": "employed",
		"batchYear": me.Batch,
		"jobTitle":  gofakeit.JobTitle(),
		"location":  gofakeit.City(),
		"bio":       gofakeit.Sentence(12),
		"skills":    []string{gofakeit.ProgrammingLanguage(), gofakeit.ProgrammingLanguage()},
	}
	data, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPut, baseURL+"/api/profile", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		log.Println("Error in saveProfile:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("saveProfile status:", resp.Status)
}

func listAlumni(client *http.Client, baseURL string) {
	resp, err := client.Get(baseURL + "/api/alumni")
	if err != nil {
		log.Println("Error in listAlumni:", err)
		return
	}
	defer resp.Body.Close()
	log.Println("listAlumni status:", resp.Status)
}
