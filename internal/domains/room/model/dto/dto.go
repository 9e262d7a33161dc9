package dto

import (
	"github.com/google/uuid"

	"github.com/adokuru/affordaily-api/internal/domains/room/model"
	"github.com/adokuru/affordaily-api/shared"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	gModel "github.com/adokuru/affordaily-api/shared/model"
	"github.com/adokuru/affordaily-api/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" validate:"required,max=16"`
	BedType     string `json:"bed_type"    validate:"required,oneof=A B"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		BedType:     c.BedType,
		IsAvailable: true,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	ID          string `json:"id"`
	RoomNumber  string `json:"room_number"`
	BedType     string `json:"bed_type"`
	IsAvailable bool   `json:"is_available"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.BedType = model.BedType
	r.IsAvailable = model.IsAvailable
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type OccupancyStatResponse struct {
	BedType       string  `json:"bed_type"`
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	Occupied      int     `json:"occupied"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type OccupancyStatsResponse struct {
	Stats         []OccupancyStatResponse `json:"stats"`
	Total         int                     `json:"total"`
	Available     int                     `json:"available"`
	Occupied      int                     `json:"occupied"`
	OccupancyRate float64                 `json:"occupancy_rate"`
}

func (r *OccupancyStatsResponse) FromModels(models []model.OccupancyStat) {
	r.Stats = make([]OccupancyStatResponse, len(models))

	for i, stat := range models {
		rate := 0.0
		if stat.Total > 0 {
			rate = float64(stat.Occupied) / float64(stat.Total) * 100
		}

		r.Stats[i] = OccupancyStatResponse{
			BedType:       stat.BedType,
			Total:         stat.Total,
			Available:     stat.Available,
			Occupied:      stat.Occupied,
			OccupancyRate: rate,
		}

		r.Total += stat.Total
		r.Available += stat.Available
		r.Occupied += stat.Occupied
	}

	if r.Total > 0 {
		r.OccupancyRate = float64(r.Occupied) / float64(r.Total) * 100
	}
}
