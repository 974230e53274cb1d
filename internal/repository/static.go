package repository

import "wayfinding/internal/model"

// DefaultBuildings returns the embedded building catalog. It is the catalog
// of record when no database is configured; the map-editor tooling writes
// the same shape into PostgreSQL.
func DefaultBuildings() []model.Building {
	return []model.Building{
		{Code: "A", Name: "อาคารทศมินทราธิราช", Floors: 25, Category: model.CategoryMain},
		{Code: "B", Name: "ตึกสิรินธร", Floors: 18, Category: model.CategoryIPD},
		{Code: "CHALERM", Name: "อาคารเฉลิมพระเกียรติฯ", Floors: 12, Category: model.CategoryOPD},
		{Code: "D", Name: "ตึกอำนวยการ", Floors: 5, Category: model.CategoryAdmin},
		{Code: "E", Name: "ตึกอุบัติเหตุและฉุกเฉิน", Floors: 4, Category: model.CategoryER},
		{Code: "F", Name: "ตึกอายุรกรรม", Floors: 6, Category: model.CategoryIPD},
		{Code: "G", Name: "ตึกสอาด ศิริพัฒน์", Floors: 8, Category: model.CategoryHeart},
		{Code: "H", Name: "ตึกหลวงชำนาญเนติศาสตร์", Floors: 6, Category: model.CategoryClinic},
		{Code: "I", Name: "ตึกเจริญ พูลวรลักษณ์", Floors: 5, Category: model.CategoryOther},
		{Code: "J", Name: "ตึกวิเคราะห์โรคหัวใจ", Floors: 4, Category: model.CategoryHeart},
		{Code: "K", Name: "ตึกวาศอุทิศ", Floors: 3, Category: model.CategoryEMS},
	}
}

// DefaultRooms returns the embedded room index keyed by building code and
// floor label.
func DefaultRooms() map[string]map[string][]model.Room {
	return map[string]map[string][]model.Room{
		"CHALERM": {
			"9": {
				{Code: "SC", Name: "ห้องประชุม SC", Type: model.RoomConference},
				{Code: "VC1", Name: "ห้องประชุม VC1", Type: model.RoomConference},
				{Code: "VC2", Name: "ห้องประชุม VC2", Type: model.RoomConference},
				{Code: "VC3", Name: "ห้องประชุม VC3", Type: model.RoomConference},
				{Code: "MED_RECORD", Name: "ห้องขอประวัติการรักษา", Type: model.RoomService},
			},
			"11": {
				{Code: "YOTHI", Name: "ห้องประชุมโยธี", Type: model.RoomConference},
				{Code: "RATCHAPHRUEK", Name: "ห้องประชุมราชพฤกษ์", Type: model.RoomConference},
				{Code: "SUPHANNIKA", Name: "ห้องประชุมสุพรรณิการ์", Type: model.RoomConference},
				{Code: "PHAYATHAI", Name: "ห้องประชุมพญาไท", Type: model.RoomConference},
				{Code: "PARICHAT", Name: "ห้องประชุมปาริชาติ", Type: model.RoomConference},
				{Code: "VIP_ROOM", Name: "ห้องรับรองวิทยากร", Type: model.RoomVIP},
			},
			"12": {
				{Code: "PHIBUN", Name: "ห้องประชุมพิบูลสงคราม", Type: model.RoomConference},
			},
		},
		"E": {
			"1": {
				{Code: "ER", Name: "ห้องฉุกเฉิน", Type: model.RoomEmergency},
			},
			"4": {
				{Code: "EMS_CONF", Name: "ห้องประชุม EMS", Type: model.RoomConference},
			},
		},
	}
}
