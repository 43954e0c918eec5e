package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docdigest/pkg/types"
)

func sampleDigest() types.Digest {
	return types.Digest{
		Metadata: types.DigestMetadata{
			InputDocuments:      []string{"menu.pdf", "sides.pdf"},
			Persona:             "Food Contractor",
			JobToBeDone:         "Prepare a vegetarian buffet menu",
			ProcessingTimestamp: "2026-08-31T12:00:00Z",
		},
		ExtractedSections: []types.ExtractedSection{
			{Document: "menu.pdf", SectionTitle: "Vegetarian Main Courses", ImportanceRank: 1, PageNumber: 3},
			{Document: "sides.pdf", SectionTitle: "Seasonal Sides", ImportanceRank: 2, PageNumber: 1},
		},
		SubsectionAnalysis: []types.SubsectionEntry{
			{Document: "menu.pdf", RefinedText: "Hearty vegetarian dishes for buffet service.", PageNumber: 3},
			{Document: "sides.pdf", RefinedText: "Roasted vegetables hold well on a line.", PageNumber: 1},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	want := sampleDigest()

	id, err := s.SaveRun(ctx, want, "output/digest.json")
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.SaveRun(ctx, sampleDigest(), "")
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, sampleDigest(), "")
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, 2, runs[0].Documents)
	assert.Equal(t, 2, runs[0].Sections)
	assert.Equal(t, "Food Contractor", runs[0].Persona)
}

func TestListRunsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.SaveRun(ctx, sampleDigest(), "")
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestGetRunNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetRun(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListRunsEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
