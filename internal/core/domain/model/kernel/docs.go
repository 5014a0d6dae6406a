// Package kernel holds value objects shared by all school aggregates:
// entity identity (ID) and Gender.
package kernel
