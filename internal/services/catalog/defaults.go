package catalog

import "github.com/tourmate/tourmate/internal/model"

// defaultData is the built-in Seoul catalog, used when no catalog file
// is configured so the system can always start cold.
func defaultData() data {
	return data{
		PlaceXP: map[string]int{
			"경복궁":     80,
			"남산서울타워":  65,
			"동대문 DDP": 35,
			"명동":      25,
			"인사동":     40,
			"창덕궁":     70,
			"북촌한옥마을":  50,
			"광장시장":    30,
			"서울숲":     20,
			"63빌딩":    45,
		},
		CategoryColors: map[string]string{
			"체육시설":     "blue",
			"공연행사":     "purple",
			"관광기념품":    "green",
			"한국음식점":    "orange",
			"미술관/전시":   "pink",
			"종로구 관광지":  "red",
			"자연/공원":    "teal",
			"랜드마크":     "darkblue",
		},
		DefaultColor: "gray",
		Places: []model.Place{
			{Title: "경복궁", Latitude: 37.5796, Longitude: 126.9770, Category: "종로구 관광지", Info: "조선 왕조의 법궁"},
			{Title: "창덕궁", Latitude: 37.5794, Longitude: 126.9910, Category: "종로구 관광지", Info: "유네스코 세계문화유산"},
			{Title: "북촌한옥마을", Latitude: 37.5826, Longitude: 126.9831, Category: "종로구 관광지", Info: "전통 한옥 밀집 지역"},
			{Title: "인사동", Latitude: 37.5740, Longitude: 126.9853, Category: "관광기념품", Info: "전통 공예품과 찻집 거리"},
			{Title: "광장시장", Latitude: 37.5701, Longitude: 126.9996, Category: "한국음식점", Info: "빈대떡과 마약김밥으로 유명한 전통시장"},
			{Title: "명동", Latitude: 37.5637, Longitude: 126.9838, Category: "관광기념품", Info: "쇼핑과 길거리 음식의 중심지"},
			{Title: "동대문 DDP", Latitude: 37.5665, Longitude: 127.0092, Category: "미술관/전시", Info: "동대문디자인플라자"},
			{Title: "남산서울타워", Latitude: 37.5512, Longitude: 126.9882, Category: "랜드마크", Info: "서울의 전망 명소"},
			{Title: "서울숲", Latitude: 37.5444, Longitude: 127.0374, Category: "자연/공원", Info: "성동구의 대형 도시공원"},
			{Title: "63빌딩", Latitude: 37.5198, Longitude: 126.9402, Category: "랜드마크", Info: "여의도의 금색 마천루"},
		},
		Courses: []model.Course{
			{Name: "문화 코스", Places: []string{"경복궁", "인사동", "창덕궁", "북촌한옥마을"}},
			{Name: "쇼핑 코스", Places: []string{"동대문 DDP", "명동", "광장시장", "남산서울타워"}},
			{Name: "자연 코스", Places: []string{"서울숲", "남산서울타워", "한강공원", "북한산"}},
			{Name: "대중적 코스", Places: []string{"경복궁", "명동", "남산서울타워", "63빌딩"}},
		},
	}
}
