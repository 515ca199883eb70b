package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mantrix/entities"
	"mantrix/pkg/merge/engine"
)

type fakeRoadmapRepo struct {
	store   map[string]entities.Roadmap
	created []entities.Roadmap
}

func newFakeRepo(roadmaps ...entities.Roadmap) *fakeRoadmapRepo {
	f := &fakeRoadmapRepo{store: map[string]entities.Roadmap{}}
	for _, r := range roadmaps {
		f.store[r.ID] = r
	}
	return f
}

func (f *fakeRoadmapRepo) Create(r *entities.Roadmap) error {
	f.created = append(f.created, *r)
	f.store[r.ID] = *r
	return nil
}

func (f *fakeRoadmapRepo) FindByID(id, uid string) (*entities.Roadmap, error) {
	r, ok := f.store[id]
	if !ok || r.UserID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	out := r
	return &out, nil
}

func (f *fakeRoadmapRepo) ListByUser(uid string) ([]entities.Roadmap, error) {
	out := []entities.Roadmap{}
	for _, r := range f.store {
		if r.UserID == uid {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoadmapRepo) Delete(id, uid string) (bool, error) {
	if r, ok := f.store[id]; ok && r.UserID == uid {
		delete(f.store, id)
		return true, nil
	}
	return false, nil
}

func seedRoadmap(id, uid, title string) entities.Roadmap {
	r := entities.Roadmap{
		ID: id, UserID: uid, Title: title,
		Branches: []entities.Branch{
			{ID: id + "-b1", Title: "Core " + title, Videos: []entities.VideoModule{
				{ID: id + "-v1", Title: "Intro to " + title, Duration: 900, IsCore: true},
				{ID: id + "-v2", Title: "Deep " + title, Duration: 1200, IsCore: false},
			}},
		},
	}
	r.RecomputeDurations()
	return r
}

func newSvc(repo *fakeRoadmapRepo) *MergeSvc {
	s := New(repo)
	s.now = func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) } // a Monday
	return s
}

func TestMergeRoadmapsPersistsWithLineage(t *testing.T) {
	repo := newFakeRepo(
		seedRoadmap("rm_1", "u1", "Go"),
		seedRoadmap("rm_2", "u1", "Rust"),
	)
	svc := newSvc(repo)

	res, err := svc.MergeRoadmaps([]string{"rm_1", "rm_2"}, "u1", "none", false, 1.0)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, res.MergedRoadmap.ID, saved.ID)
	assert.Equal(t, []string{"rm_1", "rm_2"}, saved.MergedFrom)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, 2, res.SourceCount)
	assert.Nil(t, res.Calendar)
}

func TestMergeRoadmapsBuildsCalendarInAutoMode(t *testing.T) {
	repo := newFakeRepo(
		seedRoadmap("rm_1", "u1", "Go"),
		seedRoadmap("rm_2", "u1", "Rust"),
	)
	svc := newSvc(repo)

	res, err := svc.MergeRoadmaps([]string{"rm_1", "rm_2"}, "u1", "auto", true, 1.0)
	require.NoError(t, err)
	require.NotNil(t, res.Calendar)
	assert.NotEmpty(t, res.Calendar)
	assert.Equal(t, "auto", res.ScheduleMode)
	assert.True(t, res.CalendarEnabled)
}

func TestMergeRoadmapsSkipsForeignAndMissingIDs(t *testing.T) {
	repo := newFakeRepo(
		seedRoadmap("rm_1", "u1", "Go"),
		seedRoadmap("rm_2", "u2", "Rust"), // someone else's
	)
	svc := newSvc(repo)

	_, err := svc.MergeRoadmaps([]string{"rm_1", "rm_2", "rm_ghost"}, "u1", "none", false, 1.0)
	require.Error(t, err)
	var ve *engine.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Empty(t, repo.created)
}

func TestPreviewMergeDoesNotPersist(t *testing.T) {
	repo := newFakeRepo(
		seedRoadmap("rm_1", "u1", "Go"),
		seedRoadmap("rm_2", "u1", "Rust"),
	)
	svc := newSvc(repo)

	preview, stats, err := svc.PreviewMerge([]string{"rm_1", "rm_2"}, "u1")
	require.NoError(t, err)
	require.NotNil(t, preview)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.OriginalRoadmaps)
	assert.Empty(t, repo.created, "preview must never write")
	_, err = repo.FindByID(preview.ID, "u1")
	assert.Error(t, err)
}

func TestMergeableRoadmapsExcludesMergeProducts(t *testing.T) {
	plain := seedRoadmap("rm_1", "u1", "Go")
	merged := seedRoadmap("mrg_aabbccdd", "u1", "Merged: Go + Rust")
	merged.MergedFrom = []string{"rm_1", "rm_2"}
	other := seedRoadmap("rm_3", "u2", "Rust")

	svc := newSvc(newFakeRepo(plain, merged, other))
	out, err := svc.MergeableRoadmaps("u1")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "rm_1", out[0].ID)
	assert.Equal(t, "Go", out[0].Title)
	assert.Equal(t, plain.TotalDuration, out[0].EstimatedDuration)
	assert.Equal(t, 1, out[0].BranchCount)
}
