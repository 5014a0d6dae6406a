package commands_test

import (
	"context"

	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"

	"github.com/stretchr/testify/mock"
)

type mockRepository[E any] struct{ mock.Mock }

func (m *mockRepository[E]) FindByID(ctx context.Context, id kernel.ID) (E, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(E)
	return e, args.Error(1)
}

func (m *mockRepository[E]) Save(ctx context.Context, entity E) (E, error) {
	args := m.Called(ctx, entity)
	e, _ := args.Get(0).(E)
	return e, args.Error(1)
}

func (m *mockRepository[E]) Restore(ctx context.Context, entity E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockRepository[E]) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfileRepository struct {
	mockRepository[*profile.Profile]
}

func (m *MockProfileRepository) CountReferences(ctx context.Context, profileID kernel.ID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuthorityPersonRepository struct {
	mockRepository[*person.AuthorityPerson]
}

type MockCourseRepository struct {
	mockRepository[*course.Course]
}

type MockStudentsGroupRepository struct {
	mockRepository[*group.StudentsGroup]
}

type MockStudentRepository struct {
	mockRepository[*student.Student]
}

func (m *MockStudentRepository) CountByCourse(ctx context.Context, courseID kernel.ID) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) CountByGroup(ctx context.Context, groupID kernel.ID) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFacultyRepository struct {
	mockRepository[*faculty.Faculty]
}

func (m *MockFacultyRepository) CountByDean(ctx context.Context, personID kernel.ID) (int64, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(int64), args.Error(1)
}

func newCourse(id kernel.ID, name string) *course.Course {
	c, err := course.NewCourse(id, name, "")
	if err != nil {
		panic(err)
	}
	return c
}

func newPerson(id, profileID kernel.ID) *person.AuthorityPerson {
	p, err := person.NewAuthorityPerson(id, profileID, "Dr.", "Ada", "Lovelace", kernel.Female)
	if err != nil {
		panic(err)
	}
	return p
}

func newProfile(id kernel.ID) *profile.Profile {
	p, err := profile.NewProfile(id, profile.Principal, "ada@school.edu", "", "", "")
	if err != nil {
		panic(err)
	}
	return p
}

func newStudent(id, profileID kernel.ID, courses ...kernel.ID) *student.Student {
	s, err := student.NewStudent(id, profileID, "Grace", "Hopper", kernel.Female, kernel.NoID, courses)
	if err != nil {
		panic(err)
	}
	return s
}
