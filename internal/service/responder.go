package service

import (
	"fmt"
	"sort"
	"strings"

	"wayfinding/internal/model"
	"wayfinding/internal/utils"
)

// intentRule maps trigger keywords to an already-resolved response.
// When allOf is set every keyword must be present (logical AND); otherwise
// any single anyOf keyword matches. Keywords are matched as substrings of
// the normalized question.
type intentRule struct {
	anyOf    []string
	allOf    []string
	response string
}

func (r *intentRule) matches(question string) bool {
	if len(r.allOf) > 0 {
		return utils.ContainsAll(question, r.allOf)
	}
	return utils.ContainsAny(question, r.anyOf)
}

// LocalResponder answers facility questions without any external AI
// provider. It evaluates a fixed, hand-ordered rule list: specific room
// triggers come before the broader category triggers so a question naming
// a room is answered specifically, and the first matching rule wins.
//
// Room locations in the responses are resolved from the Directory at
// construction time, so the chat answers cannot drift from what the
// structured navigation API reports. Facts outside the directory model
// (hours, phone numbers, capacities) remain template text.
type LocalResponder struct {
	rules    []intentRule
	fallback string
}

// NewLocalResponder builds the rule list against the given directory.
func NewLocalResponder(directory *Directory) *LocalResponder {
	loc := func(roomCode string) string {
		room, building, floor, ok := directory.FindRoom(roomCode)
		if !ok {
			return ""
		}
		return fmt.Sprintf("📍 <b>%s</b><br>%s ชั้น %s", room.Name, building.Name, floor)
	}

	rules := []intentRule{
		// Named conference rooms first: most specific triggers win.
		{anyOf: []string{"โยธี"}, response: loc("YOTHI") + "<br>ความจุประมาณ 100 คน"},
		{anyOf: []string{"ราชพฤกษ์"}, response: loc("RATCHAPHRUEK")},
		{anyOf: []string{"สุพรรณิการ์"}, response: loc("SUPHANNIKA")},
		{anyOf: []string{"พญาไท"}, response: loc("PHAYATHAI")},
		{anyOf: []string{"ปาริชาติ"}, response: loc("PARICHAT")},
		{anyOf: []string{"พิบูล"}, response: loc("PHIBUN") + "<br>ห้องประชุมใหญ่ ความจุ 200 คน"},
		// "EMS" alone is a building inquiry; only EMS together with a
		// conference word means the EMS conference room.
		{allOf: []string{"ems", "ประชุม"}, response: loc("EMS_CONF")},
		{anyOf: []string{"sc", "vc"}, response: loc("SC") + " (SC, VC1, VC2, VC3)<br>หน่วยงานถ่ายทอดการพยาบาล"},
		{anyOf: []string{"ห้องประชุม"}, response: conferenceDigest(directory)},

		// Departments.
		{anyOf: []string{"ฉุกเฉิน", "er"}, response: loc("ER") + "<br>เปิด 24 ชั่วโมง"},
		{anyOf: []string{"opd", "ผู้ป่วยนอก"}, response: "🏥 <b>OPD ผู้ป่วยนอก</b><br>อาคารเฉลิมพระเกียรติฯ ชั้น 1-4"},
		{anyOf: []string{"หัวใจ"}, response: buildingLine(directory, "G", "❤️ <b>สถาบันโรคหัวใจ</b>")},
		{anyOf: []string{"ประวัติ", "เวชระเบียน"}, response: loc("MED_RECORD") + "<br>ออกจากลิฟต์ตรงไปเลี้ยวขวา"},
		{anyOf: []string{"ยา", "pharmacy"}, response: "💊 <b>ห้องยา</b><br>อาคารเฉลิมพระเกียรติฯ ชั้น 1"},
		{anyOf: []string{"การเงิน", "จ่ายเงิน"}, response: "💰 <b>การเงิน</b><br>อาคารเฉลิมพระเกียรติฯ ชั้น 1"},
		{anyOf: []string{"lab", "แล็บ"}, response: "🔬 <b>ห้องปฏิบัติการ (Lab)</b><br>อาคารทศมินทราธิราช ชั้น 3"},
		{anyOf: []string{"x-ray", "เอกซเรย์"}, response: "📷 <b>X-Ray</b><br>อาคารทศมินทราธิราช ชั้น 2"},

		// General information.
		{anyOf: []string{"เวลา", "เปิด", "ปิด"}, response: "🕐 <b>เวลาทำการ</b><br>• OPD: 08:00-16:00 น. (จ-ศ)<br>• ฉุกเฉิน: 24 ชม.<br>• เวชระเบียน: 06:00-16:00 น."},
		{anyOf: []string{"โทร", "เบอร์", "ติดต่อ"}, response: "📞 <b>ติดต่อโรงพยาบาล</b><br>โทร: 02-354-8108<br>ฉุกเฉิน: 02-354-8108 ต่อ 3000"},
		{anyOf: []string{"ที่อยู่", "อยู่ไหน", "ถนน"}, response: "📍 <b>ที่อยู่</b><br>2 ถนนพญาไท แขวงทุ่งพญาไท<br>เขตราชเทวี กรุงเทพฯ 10400"},
		{anyOf: []string{"สวัสดี", "หวัดดี", "hello"}, response: "สวัสดีค่ะ! 😊 ยินดีให้บริการค่ะ<br>ถามได้เลยนะคะ เช่น ห้องประชุมอยู่ไหน, OPD เปิดกี่โมง"},
		{anyOf: []string{"ขอบคุณ"}, response: "ยินดีค่ะ! 🙏 หากมีคำถามเพิ่มเติม ถามได้เลยนะคะ"},

		// Buildings last: the broadest category.
		{anyOf: []string{"อาคาร", "ตึก", "กี่อาคาร"}, response: buildingDigest(directory)},
	}

	return &LocalResponder{
		rules: rules,
		fallback: "ขอบคุณสำหรับคำถามค่ะ 🙏<br><br>" +
			"ลองถามเรื่องเหล่านี้ได้นะคะ:<br>" +
			"• ห้องประชุมต่างๆ<br>" +
			"• ตำแหน่งแผนก/ห้อง<br>" +
			"• เวลาทำการ<br>" +
			"• เบอร์ติดต่อ<br><br>" +
			"หรือโทร: <b>02-354-8108</b>",
	}
}

// Respond classifies the question and returns the first matching rule's
// response. It never fails: unmatched questions get the suggested-topics
// fallback.
func (r *LocalResponder) Respond(question string) string {
	q := utils.Normalize(question)
	for i := range r.rules {
		if r.rules[i].matches(q) {
			return r.rules[i].response
		}
	}
	return r.fallback
}

// conferenceDigest lists every conference room in the directory grouped by
// building and floor.
func conferenceDigest(directory *Directory) string {
	var sb strings.Builder
	sb.WriteString("📋 <b>ห้องประชุม รพ.ราชวิถี</b><br>")

	for _, building := range directory.ListBuildings() {
		lines := make([]string, 0)
		for _, floor := range sortedFloors(directory, building.Code) {
			names := make([]string, 0)
			for _, room := range directory.ListRooms(building.Code, floor) {
				if room.Type == model.RoomConference {
					names = append(names, strings.TrimPrefix(room.Name, "ห้องประชุม"))
				}
			}
			if len(names) > 0 {
				lines = append(lines, fmt.Sprintf("• ชั้น %s:%s", floor, strings.Join(names, ",")))
			}
		}
		if len(lines) > 0 {
			sb.WriteString(fmt.Sprintf("<br><b>%s:</b><br>%s", building.Name, strings.Join(lines, "<br>")))
		}
	}

	return sb.String()
}

// buildingDigest summarizes the building catalog: the three largest
// buildings by floor count plus a remainder line.
func buildingDigest(directory *Directory) string {
	buildings := directory.ListBuildings()
	sort.SliceStable(buildings, func(i, j int) bool {
		return buildings[i].Floors > buildings[j].Floors
	})

	var sb strings.Builder
	sb.WriteString("🏥 <b>อาคารในโรงพยาบาลราชวิถี</b>")
	shown := len(buildings)
	if shown > 3 {
		shown = 3
	}
	for _, b := range buildings[:shown] {
		sb.WriteString(fmt.Sprintf("<br>• %s (%d ชั้น)", b.Name, b.Floors))
	}
	if rest := len(buildings) - shown; rest > 0 {
		sb.WriteString(fmt.Sprintf("<br>• และอื่นๆ อีก %d อาคาร", rest))
	}
	return sb.String()
}

// buildingLine formats a department headline with its building location.
func buildingLine(directory *Directory, buildingCode, headline string) string {
	building, ok := directory.GetBuilding(buildingCode)
	if !ok {
		return headline
	}
	return fmt.Sprintf("%s<br>%s (ตึก %s)", headline, building.Name, building.Code)
}

// sortedFloors returns the floor labels that have rooms registered for a
// building, in ascending numeric order.
func sortedFloors(directory *Directory, buildingCode string) []string {
	floors := make([]string, 0)
	for floor := range directory.rooms[buildingCode] {
		floors = append(floors, floor)
	}
	sort.Slice(floors, func(i, j int) bool {
		if len(floors[i]) != len(floors[j]) {
			return len(floors[i]) < len(floors[j])
		}
		return floors[i] < floors[j]
	})
	return floors
}
