package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestUnitsCmd_HasSubcommands(t *testing.T) {
	names := subcommandNames(unitsCmd)
	assert.ElementsMatch(t, []string{"list", "add", "update", "delete"}, names)
}

func TestUnitsListCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "units", "list", "1", "BIO501")
	require.NoError(t, err)
	assert.Contains(t, out, "BIO501 Bioinformatics I (4 credits)")
	assert.Contains(t, out, "Unit 1: Introduction to Bioinformatics")
	assert.Contains(t, out, "Unit 3: Pairwise Alignment")
}

func TestUnitsListCmd_RequiresTwoArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "units", "list", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestUnitsAddThenDelete(t *testing.T) {
	fx := setupTestServices(t)
	ctx := context.Background()

	out, err := execute(t, "units", "add", "1", "BIO501", "--title", "Phylogenetics", "--content", "Trees")
	require.NoError(t, err)
	assert.Contains(t, out, "Added unit to BIO501: Phylogenetics")

	subj, err := fx.syllabus.Subject(ctx, 1, "BIO501")
	require.NoError(t, err)
	require.Len(t, subj.Units, 4)
	assert.Equal(t, domain.Unit{Title: "Phylogenetics", Content: "Trees"}, subj.Units[3])

	_, err = execute(t, "units", "delete", "1", "BIO501", "4")
	require.NoError(t, err)

	subj, err = fx.syllabus.Subject(ctx, 1, "BIO501")
	require.NoError(t, err)
	assert.Len(t, subj.Units, 3)
}

func TestUnitsAddCmd_RequiresTitle(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "units", "add", "1", "BIO501")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnitsUpdateCmd_KeepsUnsetFields(t *testing.T) {
	fx := setupTestServices(t)
	ctx := context.Background()

	before, err := fx.syllabus.Subject(ctx, 1, "BIO501")
	require.NoError(t, err)

	_, err = execute(t, "units", "update", "1", "BIO501", "2", "--title", "Biological Databases")
	require.NoError(t, err)

	after, err := fx.syllabus.Subject(ctx, 1, "BIO501")
	require.NoError(t, err)
	assert.Equal(t, "Biological Databases", after.Units[1].Title)
	assert.Equal(t, before.Units[1].Content, after.Units[1].Content)
}

func TestUnitsUpdateCmd_OutOfRange(t *testing.T) {
	fx := setupTestServices(t)

	_, err := execute(t, "units", "update", "1", "BIO501", "9", "--title", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)

	subj, err := fx.syllabus.Subject(context.Background(), 1, "BIO501")
	require.NoError(t, err)
	assert.Len(t, subj.Units, 3)
}

func TestUnitsDeleteCmd_OutOfRange(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "units", "delete", "1", "BIO501", "4")
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestSubjectRenameCmd(t *testing.T) {
	fx := setupTestServices(t)

	out, err := execute(t, "subject", "rename", "1", "BIO501", "Bioinformatics Foundations")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed BIO501 to Bioinformatics Foundations")

	subj, err := fx.syllabus.Subject(context.Background(), 1, "BIO501")
	require.NoError(t, err)
	assert.Equal(t, "Bioinformatics Foundations", subj.Name)
	assert.Equal(t, 4, subj.Credits)
}

func TestSubjectCreditsCmd(t *testing.T) {
	fx := setupTestServices(t)

	_, err := execute(t, "subject", "credits", "1", "BIO501", "5")
	require.NoError(t, err)

	subj, err := fx.syllabus.Subject(context.Background(), 1, "BIO501")
	require.NoError(t, err)
	assert.Equal(t, 5, subj.Credits)

	_, err = execute(t, "subject", "credits", "1", "BIO501", "five")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubjectRenameCmd_UnknownSubject(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "subject", "rename", "2", "BIO501", "Nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
