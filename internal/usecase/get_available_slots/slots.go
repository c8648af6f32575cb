package get_available_slots

import (
	"github.com/royalrinse/booking-service/internal/domain"
	"github.com/royalrinse/booking-service/pkg/types"
)

// availableSlots возвращает слоты дневного набора, не занятые одобренными
// бронированиями. Порядок набора сохраняется.
//
// Слот занимают ТОЛЬКО бронирования в статусе approved: pending-заявки не
// блокируют слот (оптимистичная модель — слот подтверждается при аппруве),
// rejected и completed тоже не блокируют. Поэтому вызывающий передает сюда
// только approved-бронирования на нужную дату
func availableSlots(slotSet domain.SlotSet, bookings []*domain.Booking) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.OccupiesSlot() {
			taken[b.TimeSlot] = struct{}{}
		}
	}

	free := make([]types.TimeString, 0, len(slotSet))
	for _, slot := range slotSet {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return free
}
