package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantrix/entities"
)

func vid(id, title string, dur int, core bool) entities.VideoModule {
	return entities.VideoModule{ID: id, Title: title, Duration: dur, IsCore: core}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "machinelearning", NormalizeTitle("Machine Learning"))
	assert.Equal(t, "machinelearning", NormalizeTitle("  machine-learning "))
	assert.Equal(t, "machinelearning", NormalizeTitle("MACHINE_LEARNING"))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestGroupBranchesKeepsFirstEncounterOrder(t *testing.T) {
	branches := []entities.Branch{
		{ID: "b1", Title: "Go Basics"},
		{ID: "b2", Title: "Concurrency"},
		{ID: "b3", Title: "go-basics"},
		{ID: "b4", Title: "Testing"},
	}
	order, groups := GroupBranches(branches)

	require.Equal(t, []string{"gobasics", "concurrency", "testing"}, order)
	assert.Len(t, groups["gobasics"], 2)
	assert.Equal(t, "b1", groups["gobasics"][0].ID)
	assert.Equal(t, "b3", groups["gobasics"][1].ID)
}

func TestMergeGroupDedupesNonCoreFirstSeen(t *testing.T) {
	group := []entities.Branch{
		{
			ID: "b1", Title: "SQL Basics", SourceRoadmap: "Data Track",
			Videos: []entities.VideoModule{
				vid("v1", "Intro to SQL", 600, false),
				vid("v2", "Joins", 900, false),
			},
		},
		{
			ID: "b2", Title: "sql basics", SourceRoadmap: "Backend Track",
			Videos: []entities.VideoModule{
				vid("v3", "intro-to-sql", 700, false),
				vid("v4", "Indexes", 800, false),
			},
		},
	}
	merged := MergeGroup(group)

	require.Len(t, merged.Videos, 3)
	assert.Equal(t, "v1", merged.Videos[0].ID) // first-seen duplicate wins
	assert.Equal(t, "v2", merged.Videos[1].ID)
	assert.Equal(t, "v4", merged.Videos[2].ID)
	assert.Equal(t, 600+900+800, merged.EstimatedDuration)
	assert.Equal(t, "b1", merged.ID)
	assert.Equal(t, "SQL Basics", merged.Title)
	assert.Contains(t, merged.Description, "(Merged from: Data Track, Backend Track)")
}

func TestMergeGroupNeverDropsCoreModules(t *testing.T) {
	group := []entities.Branch{
		{ID: "b1", Title: "Foundations", Videos: []entities.VideoModule{
			vid("v1", "Variables", 300, true),
		}},
		{ID: "b2", Title: "foundations", Videos: []entities.VideoModule{
			vid("v2", "Variables", 400, true), // same normalized title, still core
			vid("v3", "variables", 500, false),
		}},
	}
	merged := MergeGroup(group)

	ids := make([]string, 0, len(merged.Videos))
	for _, v := range merged.Videos {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"v1", "v2"}, ids)
	assert.Equal(t, 700, merged.EstimatedDuration)
}

func twoRoadmaps() []entities.Roadmap {
	a := entities.Roadmap{
		ID: "rm_a", Title: "Frontend Path",
		Branches: []entities.Branch{
			{ID: "a1", Title: "HTML & CSS", Videos: []entities.VideoModule{
				vid("v1", "HTML Tags", 600, true),
				vid("v2", "Flexbox", 900, false),
			}},
			{ID: "a2", Title: "JavaScript", Videos: []entities.VideoModule{
				vid("v3", "Closures", 800, true),
			}},
		},
	}
	b := entities.Roadmap{
		ID: "rm_b", Title: "Fullstack Path",
		Branches: []entities.Branch{
			{ID: "b1", Title: "javascript", Videos: []entities.VideoModule{
				vid("v4", "closures", 850, false), // dup of v3, non-core
				vid("v5", "Promises", 700, false),
			}},
			{ID: "b2", Title: "Databases", Videos: []entities.VideoModule{
				vid("v6", "SQL Intro", 1000, true),
			}},
		},
	}
	a.RecomputeDurations()
	b.RecomputeDurations()
	return []entities.Roadmap{a, b}
}

func TestMergeCombinesSharedBranchesAndDedupes(t *testing.T) {
	sources := twoRoadmaps()
	merged, err := Merge(sources, "user-1")
	require.NoError(t, err)

	// HTML & CSS, JavaScript (merged), Databases — in first-encounter order.
	require.Len(t, merged.Branches, 3)
	assert.Equal(t, "HTML & CSS", merged.Branches[0].Title)
	assert.Equal(t, "JavaScript", merged.Branches[1].Title)
	assert.Equal(t, "Databases", merged.Branches[2].Title)

	js := merged.Branches[1]
	ids := make([]string, 0, len(js.Videos))
	for _, v := range js.Videos {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"v3", "v5"}, ids) // v4 deduped against core v3

	assert.Equal(t, "Merged: Frontend Path + Fullstack Path", merged.Title)
	assert.True(t, strings.HasPrefix(merged.ID, "mrg_"))
	assert.Len(t, merged.ID, len("mrg_")+8)
	assert.Equal(t, []string{"rm_a", "rm_b"}, merged.MergedFrom)
	assert.Nil(t, merged.CustomizedFrom)
	assert.Equal(t, "user-1", merged.UserID)

	wantTotal := 0
	for _, br := range merged.Branches {
		wantTotal += br.EstimatedDuration
	}
	assert.Equal(t, wantTotal, merged.TotalDuration)
}

func TestMergeDoesNotMutateSources(t *testing.T) {
	sources := twoRoadmaps()
	beforeTitle := sources[1].Branches[0].Videos[0].Title
	beforeLen := len(sources[0].Branches[1].Videos)

	_, err := Merge(sources, "user-1")
	require.NoError(t, err)

	assert.Equal(t, beforeTitle, sources[1].Branches[0].Videos[0].Title)
	assert.Len(t, sources[0].Branches[1].Videos, beforeLen)
	assert.Empty(t, sources[0].Branches[0].SourceRoadmap)
}

func TestMergeTitleTruncatesAfterThreeSources(t *testing.T) {
	sources := make([]entities.Roadmap, 0, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		sources = append(sources, entities.Roadmap{
			ID: "rm_" + name, Title: name,
			Branches: []entities.Branch{{ID: name, Title: "Topic " + name, Videos: []entities.VideoModule{
				vid("v"+name, "Mod "+name, 100, false),
			}}},
		})
	}
	merged, err := Merge(sources, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Merged: A + B + C (+2 more)", merged.Title)
}

func TestMergeRejectsFewerThanTwoSources(t *testing.T) {
	_, err := Merge(twoRoadmaps()[:1], "user-1")
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestStats(t *testing.T) {
	sources := twoRoadmaps()
	merged, err := Merge(sources, "user-1")
	require.NoError(t, err)

	s := Stats(sources, merged)
	assert.Equal(t, 2, s.OriginalRoadmaps)
	assert.Equal(t, 4, s.OriginalBranches)
	assert.Equal(t, 3, s.FinalBranches)
	assert.Equal(t, sources[0].TotalDuration+sources[1].TotalDuration, s.OriginalDuration)
	assert.Equal(t, merged.TotalDuration, s.FinalDuration)
	assert.Equal(t, 850, s.DurationSaved) // the deduped non-core copy of Closures
	assert.InDelta(t, 17.5, s.EfficiencyGain, 0.11)
}

func TestStatsZeroOriginalDuration(t *testing.T) {
	s := Stats(nil, &entities.Roadmap{})
	assert.Equal(t, 0, s.DurationSaved)
	assert.Equal(t, 0.0, s.EfficiencyGain)
}
