package models

// Room là một phòng vật lý thuộc về đúng một loại phòng
type Room struct {
	RoomID     uint      `json:"id"`
	RoomNumber int       `json:"roomNumber"`
	RoomTypeID uint      `json:"roomTypeId"`
	RoomType   *RoomType `json:"roomType,omitempty"`
}

// RoomType là một loại phòng: cùng giá, mô tả và tiện nghi
type RoomType struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Facilities  []string `json:"facilities"`
	Rooms       []Room   `json:"rooms,omitempty"`
}

// DedupFacilities loại bỏ tag tiện nghi trùng lặp, giữ nguyên thứ tự
func (t *RoomType) DedupFacilities() {
	seen := make(map[string]bool, len(t.Facilities))
	out := t.Facilities[:0]
	for _, f := range t.Facilities {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	t.Facilities = out
}
