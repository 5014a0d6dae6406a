package http

import (
	"school/internal/core/domain/model/course"
	"school/internal/core/domain/model/faculty"
	"school/internal/core/domain/model/group"
	"school/internal/core/domain/model/kernel"
	"school/internal/core/domain/model/person"
	"school/internal/core/domain/model/profile"
	"school/internal/core/domain/model/student"
	"school/internal/core/ports"
	"school/internal/generated/servers"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(id kernel.ID) *int64 {
	if id.IsTransient() {
		return nil
	}
	v := id.Int64()
	return &v
}

func idOf(v *int64) kernel.ID {
	if v == nil {
		return kernel.NoID
	}
	return kernel.ID(*v)
}

func idsOf(v *[]int64) []kernel.ID {
	if v == nil {
		return nil
	}
	ids := make([]kernel.ID, 0, len(*v))
	for _, raw := range *v {
		ids = append(ids, kernel.ID(raw))
	}
	return ids
}

func rawIDs(ids []kernel.ID) *[]int64 {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}
	return &raw
}

func toCourse(id kernel.ID, in servers.CourseInput) (*course.Course, error) {
	return course.NewCourse(id, in.Name, deref(in.Description))
}

func fromCourse(c *course.Course) servers.Course {
	return servers.Course{
		Id:          c.ID().Int64(),
		Name:        c.Name(),
		Description: optionalString(c.Description()),
	}
}

func toFaculty(id kernel.ID, in servers.FacultyInput) (*faculty.Faculty, error) {
	return faculty.NewFaculty(id, in.Name, idOf(in.DeanId), idsOf(in.CourseIds))
}

func fromFaculty(f *faculty.Faculty) servers.Faculty {
	return servers.Faculty{
		Id:        f.ID().Int64(),
		Name:      f.Name(),
		DeanId:    optionalID(f.DeanID()),
		CourseIds: rawIDs(f.CourseIDs()),
	}
}

func toStudentsGroup(id kernel.ID, in servers.StudentsGroupInput) (*group.StudentsGroup, error) {
	return group.NewStudentsGroup(id, in.Name)
}

func fromStudentsGroup(g *group.StudentsGroup) servers.StudentsGroup {
	return servers.StudentsGroup{Id: g.ID().Int64(), Name: g.Name()}
}

func toProfile(id kernel.ID, in servers.ProfileInput) (*profile.Profile, error) {
	kind, err := profile.ParseKind(string(in.Kind))
	if err != nil {
		return nil, err
	}
	return profile.NewProfile(id, kind, deref(in.Email), deref(in.Phone), deref(in.Location), deref(in.PhotoUrl))
}

func fromProfile(p *profile.Profile) servers.Profile {
	return servers.Profile{
		Id:       p.ID().Int64(),
		Kind:     servers.ProfileKind(p.Kind().String()),
		Email:    optionalString(p.Email()),
		Phone:    optionalString(p.Phone()),
		Location: optionalString(p.Location()),
		PhotoUrl: optionalString(p.PhotoURL()),
	}
}

// toOptionalProfile converts the profile part of a registration; nil lets
// the registration create an empty profile.
func toOptionalProfile(in *servers.ProfileInput) (*profile.Profile, error) {
	if in == nil {
		return nil, nil
	}
	return toProfile(kernel.NoID, *in)
}

func toAuthorityPerson(id, profileID kernel.ID, in servers.AuthorityPersonInput) (*person.AuthorityPerson, error) {
	gender, err := kernel.ParseGender(string(in.Gender))
	if err != nil {
		return nil, err
	}
	return person.NewAuthorityPerson(id, profileID, deref(in.Title), in.FirstName, in.LastName, gender)
}

func fromAuthorityPerson(p *person.AuthorityPerson) servers.AuthorityPerson {
	return servers.AuthorityPerson{
		Id:        p.ID().Int64(),
		ProfileId: optionalID(p.ProfileID()),
		Title:     optionalString(p.Title()),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Gender:    servers.Gender(p.Gender().String()),
	}
}

func toStudent(id, profileID kernel.ID, in servers.StudentInput) (*student.Student, error) {
	gender, err := kernel.ParseGender(string(in.Gender))
	if err != nil {
		return nil, err
	}
	return student.NewStudent(id, profileID, in.FirstName, in.LastName, gender, idOf(in.GroupId), idsOf(in.CourseIds))
}

func fromStudent(s *student.Student) servers.Student {
	return servers.Student{
		Id:        s.ID().Int64(),
		ProfileId: optionalID(s.ProfileID()),
		FirstName: s.FirstName(),
		LastName:  s.LastName(),
		Gender:    servers.Gender(s.Gender().String()),
		GroupId:   optionalID(s.GroupID()),
		CourseIds: rawIDs(s.CourseIDs()),
	}
}

func fromActionRecord(r ports.ActionRecord) servers.ActionRecord {
	return servers.ActionRecord{
		Id:         r.ID,
		Facade:     r.Facade,
		Action:     r.Action,
		CommandId:  r.CommandID,
		State:      r.State,
		Outcome:    servers.ActionRecordOutcome(r.Outcome),
		Error:      optionalString(r.Error),
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}
