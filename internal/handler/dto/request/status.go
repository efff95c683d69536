package request

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type ChangeRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available maintenance inactive"`
}
