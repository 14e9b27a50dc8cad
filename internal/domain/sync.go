package domain

// SyncAction names an operation understood by the remote endpoint.
type SyncAction string

// Write actions are sent as JSON bodies; read actions as query parameters.
const (
	ActionSaveDaily    SyncAction = "saveDailyRecord"
	ActionGetDaily     SyncAction = "getDailyRecord"
	ActionAddToilet    SyncAction = "addToiletRecord"
	ActionListToilet   SyncAction = "getToiletRecords"
	ActionSaveMedicine SyncAction = "saveMedicineRecord"
	ActionSaveHospital SyncAction = "saveHospitalRecord"
	ActionSaveLabTest  SyncAction = "saveLabtestRecord"
	ActionGetPeriod    SyncAction = "getAllData"
)

func (a SyncAction) String() string { return string(a) }
