package converter

import (
	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"
)

// TrackingToResponse converts a Tracking entity to its response DTO,
// attaching display metadata to every history entry. When includeOrdered is
// set the happy-path status progression for the reference type is included.
func TrackingToResponse(tracking *entity.Tracking, includeOrdered bool) *dto.TrackingResponse {
	if tracking == nil {
		return nil
	}

	history := make([]dto.StatusHistoryItemResponse, len(tracking.StatusHistory))
	for i, item := range tracking.StatusHistory {
		history[i] = dto.StatusHistoryItemResponse{
			Status:        item.Status,
			StatusInfo:    entity.GetStatusInfo(tracking.ReferenceType, item.Status),
			Note:          item.Note,
			ChangedBy:     item.ChangedBy,
			ChangedByName: item.ChangedByName,
			CreatedAt:     item.CreatedAt,
		}
	}

	response := &dto.TrackingResponse{
		ID:                tracking.ID,
		TrackingNumber:    tracking.TrackingNumber,
		ReferenceType:     tracking.ReferenceType,
		ReferenceID:       tracking.ReferenceID,
		CurrentStatus:     tracking.CurrentStatus,
		CurrentStatusInfo: entity.GetStatusInfo(tracking.ReferenceType, tracking.CurrentStatus),
		StatusHistory:     history,
		EstimatedDelivery: tracking.EstimatedDelivery,
		ActualDelivery:    tracking.ActualDelivery,
		AssignedTo:        tracking.AssignedTo,
		AssignedToPhone:   tracking.AssignedToPhone,
		ResultsFileURL:    tracking.ResultsFileURL,
		Notes:             tracking.Notes,
		CreatedAt:         tracking.CreatedAt,
		UpdatedAt:         tracking.UpdatedAt,
	}

	if includeOrdered {
		response.OrderedStatuses = entity.OrderedStatuses(tracking.ReferenceType)
	}

	return response
}

// TrackingsToResponses converts a slice of Tracking entities to response DTOs
func TrackingsToResponses(trackings []entity.Tracking) []dto.TrackingResponse {
	responses := make([]dto.TrackingResponse, len(trackings))
	for i := range trackings {
		responses[i] = *TrackingToResponse(&trackings[i], false)
	}
	return responses
}
