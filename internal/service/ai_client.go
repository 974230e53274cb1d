package service

import (
	"context"
	"fmt"
	"strings"
)

// CompletionProvider is the interface for external AI chat providers.
// Complete performs a single bounded completion call; any error (including
// context cancellation) makes the orchestrator move on to the next path.
type CompletionProvider interface {
	// Name returns the provenance tag reported when this provider
	// produces the response.
	Name() string

	// Configured reports whether the provider carries a format-valid
	// credential. Format-valid is not the same as reachable.
	Configured() bool

	// Complete sends the question with the facility system preamble and
	// returns the completion text.
	Complete(ctx context.Context, question string) (string, error)
}

// Ensure both providers implement CompletionProvider
var (
	_ CompletionProvider = (*OpenAIProvider)(nil)
	_ CompletionProvider = (*AnthropicProvider)(nil)
)

// SystemPreamble assembles the assistant persona plus the facility facts
// the providers answer from. The fact lines are resolved from the
// directory so provider answers describe the same catalog the navigation
// API reports.
func SystemPreamble(directory *Directory) string {
	var sb strings.Builder
	sb.WriteString("คุณเป็นผู้ช่วย AI ของโรงพยาบาลราชวิถี ช่วยตอบคำถามเกี่ยวกับ:\n")
	sb.WriteString("- ตำแหน่งห้อง/แผนก/อาคาร\n")
	sb.WriteString("- เวลาทำการ\n")
	sb.WriteString("- ข้อมูลติดต่อ\n")
	sb.WriteString("- การนำทางภายในโรงพยาบาล\n\n")
	sb.WriteString("ข้อมูลสำคัญ:\n")

	for _, building := range directory.ListBuildings() {
		for _, floor := range sortedFloors(directory, building.Code) {
			rooms := directory.ListRooms(building.Code, floor)
			if len(rooms) == 0 {
				continue
			}
			names := make([]string, 0, len(rooms))
			for _, room := range rooms {
				names = append(names, room.Name)
			}
			sb.WriteString(fmt.Sprintf("- %s ชั้น %s: %s\n", building.Name, floor, strings.Join(names, ", ")))
		}
	}

	sb.WriteString("- โทรศัพท์: 02-354-8108\n\n")
	sb.WriteString("ตอบเป็นภาษาไทย สั้นกระชับ ใช้ emoji เหมาะสม")
	return sb.String()
}
