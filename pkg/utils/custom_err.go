package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")

	ErrFamilyNotFound   = errors.New("family not found")
	ErrNotFamilyMember  = errors.New("not a family member")
	ErrNotFamilyAdmin   = errors.New("not a family admin")
	ErrPermissionDenied = errors.New("permission denied")

	ErrAlreadyFamilyMember  = errors.New("already a family member")
	ErrCannotRemoveCreator  = errors.New("cannot remove the family creator")
	ErrCannotLeaveAsCreator = errors.New("creator cannot leave the family")
	ErrMemberNotFound       = errors.New("family member not found")

	ErrInviteNotFound    = errors.New("invite not found")
	ErrInviteExpired     = errors.New("invite has expired")
	ErrInviteAlreadyUsed = errors.New("invite has already been used")
	ErrInviteNotForYou   = errors.New("invite is addressed to another user")

	ErrDuplicateJoinRequest = errors.New("a pending join request already exists")
	ErrJoinRequestNotFound  = errors.New("join request not found")
	ErrJoinRequestNotPending = errors.New("join request is no longer pending")

	ErrTaskNotFound      = errors.New("task not found")
	ErrAssigneeNotMember = errors.New("assignee is not a family member")

	ErrDatabaseError = errors.New("database error")
)
