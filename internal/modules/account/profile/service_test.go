package profile

import (
	"sync"
	"testing"

	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *models.UserModel {
	t.Helper()
	u := models.UserModel{Username: username, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	u := seedUser(t, db, "profiled")

	first, err := svc.GetOrCreate(u.ID)
	require.NoError(t, err)
	second, err := svc.GetOrCreate(u.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.ProfileModel{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateConcurrentFirstAccess(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	u := seedUser(t, db, "racer")

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := svc.GetOrCreate(u.ID)
			if err == nil && p != nil {
				ids[i] = p.ID
			}
		}(i)
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&models.ProfileModel{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetIsOwnerOnly(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	owner := seedUser(t, db, "private-owner")
	other := seedUser(t, db, "snooper")

	own, err := svc.Get(owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, own.UserID)

	_, err = svc.Get(other.ID, owner.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get("", owner.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateIsOwnerOnly(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	owner := seedUser(t, db, "editable")
	other := seedUser(t, db, "meddler")

	bio := "about me"
	updated, err := svc.Update(owner.ID, owner.ID, &UpdateProfileDTO{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "about me", updated.Bio)

	_, err = svc.Update(other.ID, owner.ID, &UpdateProfileDTO{Bio: &bio})
	assert.ErrorIs(t, err, ErrForbidden)
}
