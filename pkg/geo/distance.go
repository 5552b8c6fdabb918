package geo

import "math"

// Радиус Земли в километрах
const earthRadiusKm = 6371

// Distance вычисляет расстояние по дуге большого круга между двумя
// координатами (формула гаверсинуса). Результат в километрах.
// Функция симметрична и возвращает 0 для совпадающих точек.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
