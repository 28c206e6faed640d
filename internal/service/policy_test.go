package service

import (
	"testing"

	"fittrack/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseRefsNamesMalformedIDs(t *testing.T) {
	good := primitive.NewObjectID()
	ids, err := parseRefs([]string{good.Hex(), good.Hex()}, "exercise")
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{good, good}, ids)

	_, err = parseRefs([]string{good.Hex(), "x1", "x2"}, "exercise")
	assertKind(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "x1, x2")
}

func TestResolveRefsCollapsesRepeats(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	idOf := func(id primitive.ObjectID) primitive.ObjectID { return id }

	byID, err := resolveRefs([]primitive.ObjectID{a, a, b}, []primitive.ObjectID{a, b}, idOf, "food item")
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, []primitive.ObjectID{a, a, b}, expand([]primitive.ObjectID{a, a, b}, byID))

	_, err = resolveRefs([]primitive.ObjectID{a, b, b}, []primitive.ObjectID{a}, idOf, "food item")
	assertKind(t, err, ErrInvalidReference)
	assert.Equal(t, "unknown food item ids: "+b.Hex(), err.Error())
}

func TestRepoErrorMapping(t *testing.T) {
	assertKind(t, repoError(repository.ErrNotFound, "workout"), ErrNotFound)
	assertKind(t, repoError(repository.ErrDuplicate, "exercise"), ErrConflict)

	other := assert.AnError
	assert.Same(t, other, repoError(other, "x"))
	assert.Nil(t, KindOf(other))
	assert.Equal(t, ErrConflict, KindOf(repoError(repository.ErrDuplicate, "x")))
}
