// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus baris blacklist & refresh token
// yang sudah kedaluwarsa, tiap 6 jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[CLEANUP] blacklist err: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] blacklist purged=%d", res.RowsAffected)
			}

			res = db.
				Where("expires_at < ? OR revoked_at IS NOT NULL AND revoked_at < ?", now, now.Add(-30*24*time.Hour)).
				Delete(&authModel.RefreshToken{})
			if res.Error != nil {
				log.Printf("[CLEANUP] refresh token err: %v", res.Error)
			}
		}
	}()
}
