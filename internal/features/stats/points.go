package stats

import "hatch-egg-webapp/internal/platform/eggchain"

// FreeEggsPerDay — дефолт бесплатных яиц, если апстрим не прислал free_eggs.
const FreeEggsPerDay = 10

// Points вычисляет очки из счетчиков: 2 за каждое вылупленное чужими яйцо
// пользователя, 1 за каждое вылупленное им самим. Очки всегда
// пересчитываются из свежего ответа stats API и никогда не инкрементируются
// локально.
func Points(s *eggchain.Stats) int64 {
	if s == nil {
		return 0
	}
	return s.MyEggsHatched*2 + s.HatchedByMe*1
}

// AvailableEggs возвращает баланс яиц: значение апстрима, если оно есть,
// иначе max(0, free + paid − sent_today).
func AvailableEggs(s *eggchain.Stats) int64 {
	if s == nil {
		return 0
	}
	if s.AvailableEggs != nil {
		return *s.AvailableEggs
	}

	free := int64(FreeEggsPerDay)
	if s.FreeEggs != nil {
		free = *s.FreeEggs
	}

	n := free + s.PaidEggs - s.DailyEggsSent
	if n < 0 {
		n = 0
	}
	return n
}
