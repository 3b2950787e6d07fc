// file: internals/features/internships/queue/model/queue_counter_model.go
package model

// Penghitung nomor urut pendaftaran PKL, satu baris per tahun.
// Dinaikkan secara atomik lewat UPDATE ... RETURNING, jadi aman
// dipanggil paralel tanpa nomor ganda.
type QueueCounterModel struct {
	QueueCounterYear  int `json:"queue_counter_year" gorm:"primaryKey;column:queue_counter_year"`
	QueueCounterValue int `json:"queue_counter_value" gorm:"not null;default:0;column:queue_counter_value"`
}

func (QueueCounterModel) TableName() string {
	return "internship_queue_counters"
}
