package packets

type SetMyMosqueRequest struct {
	MosqueID int `json:"mosqueId" binding:"required"`
}

type ScheduleAlarmsRequest struct {
	MosqueID int `json:"mosqueId" binding:"required"`
}
