package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/XezMetITSolutions/roomapp-unified-sub001/models"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/realtime"
	"github.com/XezMetITSolutions/roomapp-unified-sub001/utils"
)

// RequestMonitor escalates guest requests that sit in pending for too long:
// it raises a staff notification once per stuck request and pushes it over
// the tenant's staff channel.
type RequestMonitor struct {
	DB        *gorm.DB
	StopChan  chan struct{}
	Interval  time.Duration
	Threshold time.Duration

	notified map[uint]bool
}

func NewRequestMonitor(db *gorm.DB) *RequestMonitor {
	return &RequestMonitor{
		DB:        db,
		StopChan:  make(chan struct{}),
		Interval:  time.Minute,
		Threshold: 15 * time.Minute,
		notified:  make(map[uint]bool),
	}
}

func (rm *RequestMonitor) Start() {
	go func() {
		ticker := time.NewTicker(rm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rm.checkStaleRequests()
			case <-rm.StopChan:
				return
			}
		}
	}()
}

func (rm *RequestMonitor) Stop() {
	close(rm.StopChan)
}

func (rm *RequestMonitor) checkStaleRequests() {
	cutoff := time.Now().Add(-rm.Threshold)

	var requests []models.GuestRequest
	if err := rm.DB.Preload("Room").
		Where("status = ? AND created_at < ?", models.RequestStatusPending, cutoff).
		Order("created_at asc").Limit(100).
		Find(&requests).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching stale requests: %v", err)
		return
	}

	for _, request := range requests {
		if rm.notified[request.ID] {
			continue
		}

		notif := models.Notification{
			TenantID: request.TenantID,
			Title:    "Request waiting",
			Message: fmt.Sprintf("Request #%d (%s, room %s) has been pending for over %d minutes",
				request.ID, request.Type, request.Room.RoomNumber, int(rm.Threshold.Minutes())),
		}

		if err := rm.DB.Create(&notif).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating escalation notification: %v", err)
			continue
		}

		realtime.EmitToStaff(request.TenantID, realtime.EventNewNotification, notif)
		rm.notified[request.ID] = true
	}

	// Forget requests that have moved on so the map does not grow forever
	for id := range rm.notified {
		var count int64
		rm.DB.Model(&models.GuestRequest{}).
			Where("id = ? AND status = ?", id, models.RequestStatusPending).
			Count(&count)
		if count == 0 {
			delete(rm.notified, id)
		}
	}
}
