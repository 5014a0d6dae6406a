// Package servers provides the types, server interface and route
// registration of the school HTTP API described by openapi.yml.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for Gender.
const (
	FEMALE Gender = "FEMALE"
	MALE   Gender = "MALE"
)

// Defines values for ProfileKind.
const (
	PRINCIPAL ProfileKind = "PRINCIPAL"
	STUDENT   ProfileKind = "STUDENT"
)

// Defines values for ActionRecordOutcome.
const (
	COMMITTED  ActionRecordOutcome = "COMMITTED"
	ROLLEDBACK ActionRecordOutcome = "ROLLED_BACK"
)

// ActionRecord defines model for ActionRecord.
type ActionRecord struct {
	Action     string              `json:"action"`
	CommandId  string              `json:"commandId"`
	Error      *string             `json:"error,omitempty"`
	Facade     string              `json:"facade"`
	FinishedAt time.Time           `json:"finishedAt"`
	Id         openapi_types.UUID  `json:"id"`
	Outcome    ActionRecordOutcome `json:"outcome"`
	StartedAt  time.Time           `json:"startedAt"`
	State      string              `json:"state"`
}

// ActionRecordOutcome defines model for ActionRecord.Outcome.
type ActionRecordOutcome string

// AuthorityPerson defines model for AuthorityPerson.
type AuthorityPerson struct {
	FirstName string  `json:"firstName"`
	Gender    Gender  `json:"gender"`
	Id        int64   `json:"id"`
	LastName  string  `json:"lastName"`
	ProfileId *int64  `json:"profileId,omitempty"`
	Title     *string `json:"title,omitempty"`
}

// AuthorityPersonInput defines model for AuthorityPersonInput.
type AuthorityPersonInput struct {
	FirstName string        `json:"firstName"`
	Gender    Gender        `json:"gender"`
	LastName  string        `json:"lastName"`
	Profile   *ProfileInput `json:"profile,omitempty"`
	Title     *string       `json:"title,omitempty"`
}

// Course defines model for Course.
type Course struct {
	Description *string `json:"description,omitempty"`
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
}

// CourseInput defines model for CourseInput.
type CourseInput struct {
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Faculty defines model for Faculty.
type Faculty struct {
	CourseIds *[]int64 `json:"courseIds,omitempty"`
	DeanId    *int64   `json:"deanId,omitempty"`
	Id        int64    `json:"id"`
	Name      string   `json:"name"`
}

// FacultyInput defines model for FacultyInput.
type FacultyInput struct {
	CourseIds *[]int64 `json:"courseIds,omitempty"`
	DeanId    *int64   `json:"deanId,omitempty"`
	Name      string   `json:"name"`
}

// Gender defines model for Gender.
type Gender string

// Profile defines model for Profile.
type Profile struct {
	Email    *string     `json:"email,omitempty"`
	Id       int64       `json:"id"`
	Kind     ProfileKind `json:"kind"`
	Location *string     `json:"location,omitempty"`
	Phone    *string     `json:"phone,omitempty"`
	PhotoUrl *string     `json:"photoUrl,omitempty"`
}

// ProfileInput defines model for ProfileInput.
type ProfileInput struct {
	Email    *string     `json:"email,omitempty"`
	Kind     ProfileKind `json:"kind"`
	Location *string     `json:"location,omitempty"`
	Phone    *string     `json:"phone,omitempty"`
	PhotoUrl *string     `json:"photoUrl,omitempty"`
}

// ProfileKind defines model for ProfileKind.
type ProfileKind string

// Student defines model for Student.
type Student struct {
	CourseIds *[]int64 `json:"courseIds,omitempty"`
	FirstName string   `json:"firstName"`
	Gender    Gender   `json:"gender"`
	GroupId   *int64   `json:"groupId,omitempty"`
	Id        int64    `json:"id"`
	LastName  string   `json:"lastName"`
	ProfileId *int64   `json:"profileId,omitempty"`
}

// StudentInput defines model for StudentInput.
type StudentInput struct {
	CourseIds *[]int64      `json:"courseIds,omitempty"`
	FirstName string        `json:"firstName"`
	Gender    Gender        `json:"gender"`
	GroupId   *int64        `json:"groupId,omitempty"`
	LastName  string        `json:"lastName"`
	Profile   *ProfileInput `json:"profile,omitempty"`
}

// StudentsGroup defines model for StudentsGroup.
type StudentsGroup struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// StudentsGroupInput defines model for StudentsGroupInput.
type StudentsGroupInput struct {
	Name string `json:"name"`
}

// ID defines model for ID.
type ID = int64

// Limit defines model for Limit.
type Limit = int

// ListActionsParams defines parameters for ListActions.
type ListActionsParams struct {
	Facade string `form:"facade" json:"facade"`
	Limit  *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListCoursesWithoutStudentsParams defines parameters for ListCoursesWithoutStudents.
type ListCoursesWithoutStudentsParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListOrphanProfilesParams defines parameters for ListOrphanProfiles.
type ListOrphanProfilesParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

type (
	CreateCourseJSONRequestBody            = CourseInput
	UpdateCourseJSONRequestBody            = CourseInput
	CreateFacultyJSONRequestBody           = FacultyInput
	UpdateFacultyJSONRequestBody           = FacultyInput
	CreateStudentsGroupJSONRequestBody     = StudentsGroupInput
	UpdateStudentsGroupJSONRequestBody     = StudentsGroupInput
	CreateProfileJSONRequestBody           = ProfileInput
	UpdateProfileJSONRequestBody           = ProfileInput
	RegisterAuthorityPersonJSONRequestBody = AuthorityPersonInput
	UpdateAuthorityPersonJSONRequestBody   = AuthorityPersonInput
	RegisterStudentJSONRequestBody         = StudentInput
	UpdateStudentJSONRequestBody           = StudentInput
)
