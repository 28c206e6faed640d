package service

import (
	"errors"
	"strings"

	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID validates a path supplied identifier before any lookup happens.
func parseID(raw, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, newError(ErrInvalidIdentifier, "invalid %s id: %q", what, raw)
	}
	return id, nil
}

// parseRefs converts referenced ids, keeping order and repeats.
// Malformed entries can never resolve, so they are reported as invalid references.
func parseRefs(raw []string, what string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	var bad []string
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(r)
		if err != nil {
			bad = append(bad, r)
			continue
		}
		ids = append(ids, id)
	}
	if len(bad) > 0 {
		return nil, newError(ErrInvalidReference, "invalid %s ids: %s", what, strings.Join(bad, ", "))
	}
	return ids, nil
}

// distinct drops repeated ids, keeping first occurrences in order.
func distinct(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveRefs indexes found by id and fails with ErrInvalidReference naming
// every requested id the owner does not have.
func resolveRefs[T any](requested []primitive.ObjectID, found []T, idOf func(T) primitive.ObjectID, what string) (map[primitive.ObjectID]T, error) {
	byID := indexByID(found, idOf)

	var missing []string
	for _, id := range distinct(requested) {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id.Hex())
		}
	}
	if len(missing) > 0 {
		return nil, newError(ErrInvalidReference, "unknown %s ids: %s", what, strings.Join(missing, ", "))
	}
	return byID, nil
}

// expand returns the referenced entities in reference order, one per mention.
// Ids absent from byID (deleted since the reference was stored) are skipped.
func expand[T any](ids []primitive.ObjectID, byID map[primitive.ObjectID]T) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// repoError translates repository sentinels into service kinds.
// Other errors pass through untouched and surface as internal failures.
func repoError(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return newError(ErrNotFound, "%s not found", what)
	case errors.Is(err, repository.ErrDuplicate):
		return newError(ErrConflict, "%s already exists", what)
	default:
		return err
	}
}

func indexByID[T any](items []T, idOf func(T) primitive.ObjectID) map[primitive.ObjectID]T {
	byID := make(map[primitive.ObjectID]T, len(items))
	for _, item := range items {
		byID[idOf(item)] = item
	}
	return byID
}
