package services

import "errors"

// Sentinel errors for the assembly domain. Services wrap these with the
// offending identifiers (fmt.Errorf("%w ...")), so callers branch with
// errors.Is while clients still see which id caused the rejection.
var (
	// ErrUnassignedTeam indicates the acting identity has no production team.
	ErrUnassignedTeam = errors.New("operator is not assigned to a team")

	// ErrCategoryMismatch indicates a team tried to manufacture a category
	// outside its assignment.
	ErrCategoryMismatch = errors.New("team is not authorized to produce this category")

	// ErrInvalidCategory indicates an unknown component category.
	ErrInvalidCategory = errors.New("unknown component category")

	// ErrInvalidModel indicates an aircraft model outside the closed set.
	ErrInvalidModel = errors.New("unknown aircraft model")

	// ErrAircraftNotFound indicates the referenced aircraft does not exist.
	ErrAircraftNotFound = errors.New("aircraft not found")

	// ErrComponentNotFound indicates the referenced component does not exist.
	ErrComponentNotFound = errors.New("component not found")

	// ErrModelMismatch indicates the component was built for a different
	// aircraft model.
	ErrModelMismatch = errors.New("component does not fit this aircraft model")

	// ErrCategoryOccupied indicates the aircraft already holds a component
	// of that category.
	ErrCategoryOccupied = errors.New("aircraft already has a component of this category")

	// ErrComponentAlreadyInstalled indicates the component sits in another
	// aircraft.
	ErrComponentAlreadyInstalled = errors.New("component is already installed")

	// ErrLinkNotFound indicates no installation link exists for the pair.
	ErrLinkNotFound = errors.New("installation link not found")

	// ErrForeignComponent indicates a recycle batch referenced a component
	// produced by another team (or a missing id).
	ErrForeignComponent = errors.New("component was not produced by this team")

	// ErrComponentInUse indicates a recycle batch referenced an installed
	// component; the whole batch is rejected.
	ErrComponentInUse = errors.New("component is currently installed")
)
