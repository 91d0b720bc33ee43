package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilka74/TowerDefence/pkg/vector"
)

func validLevel() LevelDefinition {
	return LevelDefinition{
		Name:  "ok",
		Paths: [][]vector.Vec2{{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		Waves: []WaveDefinition{
			{EnemyID: "ENEMY_BASIC", Count: 3, Health: 30, Speed: 60, Reward: 10},
		},
	}
}

func TestValidateLevel_Accepts(t *testing.T) {
	lvl := validLevel()
	if err := ValidateLevel(&lvl); err != nil {
		t.Fatalf("valid level rejected: %v", err)
	}
}

func TestValidateLevel_RejectsNoPaths(t *testing.T) {
	lvl := validLevel()
	lvl.Paths = nil
	if err := ValidateLevel(&lvl); err == nil {
		t.Fatal("level without paths must be rejected")
	}
}

func TestValidateLevel_RejectsEmptyPath(t *testing.T) {
	lvl := validLevel()
	lvl.Paths = [][]vector.Vec2{{}}
	if err := ValidateLevel(&lvl); err == nil {
		t.Fatal("empty path must be rejected")
	}
}

func TestValidateLevel_RejectsUnknownEnemy(t *testing.T) {
	lvl := validLevel()
	lvl.Waves[0].EnemyID = "ENEMY_NOBODY"
	if err := ValidateLevel(&lvl); err == nil {
		t.Fatal("unknown enemy id must be rejected")
	}
}

func TestValidateLevel_RejectsNonPositiveStats(t *testing.T) {
	cases := map[string]func(*LevelDefinition){
		"zero count":      func(l *LevelDefinition) { l.Waves[0].Count = 0 },
		"zero health":     func(l *LevelDefinition) { l.Waves[0].Health = 0 },
		"zero speed":      func(l *LevelDefinition) { l.Waves[0].Speed = 0 },
		"negative reward": func(l *LevelDefinition) { l.Waves[0].Reward = -1 },
	}
	for name, mutate := range cases {
		lvl := validLevel()
		mutate(&lvl)
		if err := ValidateLevel(&lvl); err == nil {
			t.Fatalf("%s: must be rejected", name)
		}
	}
}

func TestBuiltinLevels_AreValid(t *testing.T) {
	for i := range LevelLibrary {
		if err := ValidateLevel(&LevelLibrary[i]); err != nil {
			t.Fatalf("built-in level %d is broken: %v", i+1, err)
		}
	}
}

func TestLoadLevelDefinitions_RoundTrip(t *testing.T) {
	orig := LevelLibrary
	defer func() { LevelLibrary = orig }()

	path := filepath.Join(t.TempDir(), "levels.json")
	data := `[
		{
			"name": "custom",
			"paths": [[{"X": 0, "Y": 0}, {"X": 100, "Y": 0}]],
			"waves": [{"enemy_id": "ENEMY_FAST", "count": 2, "health": 10, "speed": 120, "reward": 15}]
		}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadLevelDefinitions(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(LevelLibrary) != 1 || LevelLibrary[0].Name != "custom" {
		t.Fatalf("library not replaced: %+v", LevelLibrary)
	}
}

func TestLoadLevelDefinitions_MissingFile(t *testing.T) {
	if err := LoadLevelDefinitions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file must be a configuration error")
	}
}
