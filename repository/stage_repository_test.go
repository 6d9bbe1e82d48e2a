package repository

import (
	"testing"

	"github.com/alphadev-tn/stage_manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEtudiants(t *testing.T, db *gorm.DB, cins ...string) {
	t.Helper()
	repo := NewEtudiantRepository(db)
	for _, cin := range cins {
		etu := models.Etudiant{Cin: cin, Name: "Etudiant " + cin, Email: cin + "@univ.tn"}
		require.NoError(t, repo.Create(&etu))
	}
}

func TestCreateWithRosterDedupes(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201", "202")

	status := "planned"
	stage := models.Stage{Status: &status}
	require.NoError(t, stages.CreateWithRoster(&stage, []string{"201", "202", "201", ""}))

	roster, err := stages.RosterOf(stage.StageID)
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestCreateWithRosterRollsBack(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201")

	stage := models.Stage{}
	err := stages.CreateWithRoster(&stage, []string{"201", "does-not-exist"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Stage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateWithRosterReplaces(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201", "202", "203")

	stage := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&stage, []string{"201", "202"}))

	rows, err := stages.UpdateWithRoster(stage.StageID, map[string]interface{}{}, []string{"203"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	roster, err := stages.RosterOf(stage.StageID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "203", roster[0].Cin)
}

func TestUpdateWithRosterFieldsOnly(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201")

	stage := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&stage, []string{"201"}))

	rows, err := stages.UpdateWithRoster(stage.StageID, map[string]interface{}{"status": "done"}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	// nil cins leaves the roster alone.
	roster, err := stages.RosterOf(stage.StageID)
	require.NoError(t, err)
	assert.Len(t, roster, 1)

	got, err := stages.GetByID(stage.StageID)
	require.NoError(t, err)
	require.NotNil(t, got.Status)
	assert.Equal(t, "done", *got.Status)
}

func TestUpdateWithRosterMissingStage(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)

	_, err := stages.UpdateWithRoster(999, map[string]interface{}{"status": "done"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWithEtudiants(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201", "202")

	withRoster := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&withRoster, []string{"201", "202"}))
	empty := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&empty, nil))

	all, err := stages.ListWithEtudiants()
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[uint]models.Stage{}
	for _, s := range all {
		byID[s.StageID] = s
	}
	assert.Len(t, byID[withRoster.StageID].Etudiants, 2)
	assert.NotNil(t, byID[empty.StageID].Etudiants)
	assert.Empty(t, byID[empty.StageID].Etudiants)
}

func TestGetWithEtudiants(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201")

	stage := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&stage, []string{"201"}))

	got, err := stages.GetWithEtudiants(stage.StageID)
	require.NoError(t, err)
	require.Len(t, got.Etudiants, 1)
	assert.Equal(t, "201", got.Etudiants[0].Cin)
}

func TestDeleteStageCascadesRoster(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	seedEtudiants(t, db, "201")

	stage := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&stage, []string{"201"}))

	rows, err := stages.Delete(stage.StageID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	var count int64
	require.NoError(t, db.Model(&models.EtudiantStage{}).Where("stage_id = ?", stage.StageID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteEtudiantCascadesRoster(t *testing.T) {
	db := openTestDB(t)
	stages := NewStageRepository(db)
	etudiants := NewEtudiantRepository(db)
	seedEtudiants(t, db, "201")

	stage := models.Stage{}
	require.NoError(t, stages.CreateWithRoster(&stage, []string{"201"}))

	rows, err := etudiants.Delete("201")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	roster, err := stages.RosterOf(stage.StageID)
	require.NoError(t, err)
	assert.Empty(t, roster)
}
