package services

import "github.com/google/uuid"

func parseID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
