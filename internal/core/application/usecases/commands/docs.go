// Package commands contains the school business operations as reversible
// commands.
//
// Every entity kind (course, faculty, students group, profile, authority
// person, student) has three leaf commands built from the same templates:
// create-or-update, delete and find. Authority persons and students are
// created and deleted together with their profile by macro commands that
// compensate completed steps when a later one fails.
//
// Example:
//
//	catalog, err := commands.NewCatalog(commands.Dependencies{...})
//	factory, err := command.NewFactory("course", catalog.Courses...)
//	facade := command.NewFacade(factory, auditExecutor, logger)
//	saved, err := command.Do[*course.Course](ctx, facade, "createOrUpdate",
//	    commands.CreateOrUpdateCourseID, command.InputOf(c))
package commands
