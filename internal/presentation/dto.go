package presentation

import (
	"quad/internal/catalog"
)

// CourseDTO represents a catalog course for presentation
type CourseDTO struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites"`
	Description   string   `json:"description"`
	Schedule      string   `json:"schedule"`
	Instructor    string   `json:"instructor"`
	Room          string   `json:"room"`
	Capacity      int      `json:"capacity"`
	Enrolled      int      `json:"enrolled"`
	SpotsLeft     int      `json:"spots_left"`
	Available     bool     `json:"available"`
}

// DepartmentDTO represents a department for presentation
type DepartmentDTO struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Head           string   `json:"head"`
	Location       string   `json:"location"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	PopularCourses []string `json:"popular_courses"`
}

// FromCourse converts a catalog course to a DTO.
func FromCourse(c catalog.Course) CourseDTO {
	prereqs := c.Prerequisites
	if prereqs == nil {
		prereqs = []string{}
	}
	return CourseDTO{
		Code:          c.Code,
		Name:          c.Name,
		Credits:       c.Credits,
		Prerequisites: prereqs,
		Description:   c.Description,
		Schedule:      c.Schedule,
		Instructor:    c.Instructor,
		Room:          c.Room,
		Capacity:      c.Capacity,
		Enrolled:      c.Enrolled,
		SpotsLeft:     c.SpotsLeft(),
		Available:     c.Available && !c.Full(),
	}
}

// FromCourses converts a slice of catalog courses to DTOs.
func FromCourses(courses []catalog.Course) []CourseDTO {
	dtos := make([]CourseDTO, len(courses))
	for i, c := range courses {
		dtos[i] = FromCourse(c)
	}
	return dtos
}

// FromDepartment converts a department to a DTO.
func FromDepartment(d catalog.Department) DepartmentDTO {
	return DepartmentDTO{
		Key:            d.Key,
		Name:           d.Name,
		Head:           d.Head,
		Location:       d.Location,
		Phone:          d.Phone,
		Email:          d.Email,
		PopularCourses: d.PopularCourses,
	}
}

// FromDepartments converts a slice of departments to DTOs.
func FromDepartments(depts []catalog.Department) []DepartmentDTO {
	dtos := make([]DepartmentDTO, len(depts))
	for i, d := range depts {
		dtos[i] = FromDepartment(d)
	}
	return dtos
}
