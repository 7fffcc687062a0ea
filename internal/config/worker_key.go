package config

type WorkerKeyStruct struct {
	PersistScheduleQueue string
}

var WorkerKey = &WorkerKeyStruct{
	PersistScheduleQueue: "persist_schedule_queue",
}
