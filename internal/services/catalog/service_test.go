package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tourmate/tourmate/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestXPForKnownPlace() {
	s.Equal(80, s.service.XPFor("경복궁"))
	s.Equal(45, s.service.XPFor("63빌딩"))
}

func (s *ServiceSuite) TestXPForUnknownPlaceUsesDefault() {
	s.Equal(DefaultXP, s.service.XPFor("UnknownPlace"))
}

func (s *ServiceSuite) TestDefaultPlacesPresent() {
	places := s.service.Places()
	s.Len(places, 10)

	place, ok := s.service.Place("남산서울타워")
	s.True(ok)
	s.InDelta(37.5512, place.Latitude, 0.001)
}

func (s *ServiceSuite) TestPlaceNotFound() {
	_, ok := s.service.Place("없는 장소")
	s.False(ok)
}

func (s *ServiceSuite) TestPlacesByCategory() {
	places := s.service.PlacesByCategory("종로구 관광지")
	s.Len(places, 3)
	for _, p := range places {
		s.Equal("종로구 관광지", p.Category)
	}
}

func (s *ServiceSuite) TestMarkersColoredByCategory() {
	markers := s.service.Markers()
	s.Len(markers, 10)

	byTitle := make(map[string]model.Marker)
	for _, m := range markers {
		byTitle[m.Title] = m
	}
	s.Equal("red", byTitle["경복궁"].Color)
	s.Equal("orange", byTitle["광장시장"].Color)
}

func (s *ServiceSuite) TestCourses() {
	courses := s.service.Courses()
	s.Len(courses, 4)

	course, err := s.service.Course("문화 코스")
	s.Require().NoError(err)
	s.Equal([]string{"경복궁", "인사동", "창덕궁", "북촌한옥마을"}, course.Places)
}

func (s *ServiceSuite) TestCoursesMayNameUncataloguedPlaces() {
	// Course stops are names, not catalog references
	course, err := s.service.Course("자연 코스")
	s.Require().NoError(err)
	s.Equal([]string{"서울숲", "남산서울타워", "한강공원", "북한산"}, course.Places)

	_, ok := s.service.Place("한강공원")
	s.False(ok)
}

func (s *ServiceSuite) TestCourseNotFound() {
	_, err := s.service.Course("없는 코스")
	s.ErrorIs(err, model.ErrCourseNotFound)
}

func (s *ServiceSuite) TestLoadFromFileOverridesDefaults() {
	path := filepath.Join(s.T().TempDir(), "places.yaml")
	content := `
place_xp:
  한강공원: 15
places:
  - title: 한강공원
    latitude: 37.5285
    longitude: 126.9327
    category: 자연/공원
courses:
  - name: 야경 코스
    places: [한강공원]
`
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	s.Require().NoError(s.service.LoadFromFile(path))

	s.Equal(15, s.service.XPFor("한강공원"))
	// place_xp replaced wholesale, so the old table is gone
	s.Equal(DefaultXP, s.service.XPFor("경복궁"))

	places := s.service.Places()
	s.Require().Len(places, 1)
	s.Equal("한강공원", places[0].Title)

	// Category colors keep their defaults when absent from the file
	markers := s.service.Markers()
	s.Equal("teal", markers[0].Color)
}

func (s *ServiceSuite) TestLoadFromMissingFileFails() {
	err := s.service.LoadFromFile("does/not/exist.yaml")
	s.Error(err)
	// Defaults stay intact
	s.Equal(80, s.service.XPFor("경복궁"))
}
