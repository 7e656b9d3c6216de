package dto

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/qyinm/filmboard/types"
)

func TestDTOJSONMarshal(t *testing.T) {
	card := types.NewCard(
		"film-001",
		types.FilmInfo{
			Title:         "Sagebrush Trail",
			OriginalTitle: "Sagebrush Trail",
			Rating:        6.2,
			Director:      "Armand Schaefer",
			Writers:       []string{"Lindsley Parsons"},
			Actors:        []string{"John Wayne"},
			Release:       time.Date(1933, 12, 15, 0, 0, 0, 0, time.UTC),
			Runtime:       54 * time.Minute,
			Country:       "USA",
			Genres:        []string{"Western"},
			Description:   "Sentenced for a murder he did not commit.",
			AgeRating:     "0+",
		},
		types.Flags{Watched: true},
		[]types.Comment{
			types.NewComment("Tim Macoveev", "Interesting setting", "smile", time.Date(2019, 12, 31, 23, 59, 0, 0, time.UTC)),
		},
	)

	cardDTO := FromCard(card)
	detailDTO := FromCardDetail(card)
	filterDTO := FromFilter(types.NewFilter("Watchlist", "watchlist", 3))

	if _, err := json.Marshal(cardDTO); err != nil {
		t.Fatalf("marshal card dto: %v", err)
	}
	b, err := json.Marshal(detailDTO)
	if err != nil {
		t.Fatalf("marshal detail dto: %v", err)
	}
	if _, err := json.Marshal(filterDTO); err != nil {
		t.Fatalf("marshal filter dto: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal detail dto: %v", err)
	}

	inner, ok := got["card"].(map[string]any)
	if !ok {
		t.Fatalf("missing card object: %v", got)
	}
	if inner["id"] != "film-001" {
		t.Fatalf("unexpected id: %v", inner["id"])
	}
	if inner["runtime"] != "54m" {
		t.Fatalf("unexpected runtime: %v", inner["runtime"])
	}
	if inner["year"] != float64(1933) {
		t.Fatalf("unexpected year: %v", inner["year"])
	}
	if inner["comments"] != float64(1) {
		t.Fatalf("unexpected comments: %v", inner["comments"])
	}
	if got["release"] != "1933-12-15" {
		t.Fatalf("unexpected release: %v", got["release"])
	}
	list, ok := got["comment_list"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected comment_list: %v", got["comment_list"])
	}
}

func TestDTOEmptySlices(t *testing.T) {
	card := types.NewCard("film-002", types.FilmInfo{Title: "Bare"}, types.Flags{}, nil).WithCommentCount(4)

	b, err := json.Marshal(FromCardDetail(card))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"writers", "actors", "comment_list"} {
		if _, ok := got[field].([]any); !ok {
			t.Fatalf("%s should be an empty array, got %v", field, got[field])
		}
	}
	inner := got["card"].(map[string]any)
	if _, ok := inner["year"]; ok {
		t.Fatalf("zero year should be omitted")
	}
	if inner["comments"] != float64(4) {
		t.Fatalf("imported comment count lost: %v", inner["comments"])
	}
}

func TestDTOFilter(t *testing.T) {
	all := FromFilter(types.NewUncountedFilter("All movies", "all"))
	if all.Counted {
		t.Fatalf("All movies carries no count")
	}
	fav := FromFilter(types.NewFilter("Favorites", "favorites", 2))
	if !fav.Counted || fav.Count != 2 {
		t.Fatalf("unexpected filter: %+v", fav)
	}
}

func TestDTOFields(t *testing.T) {
	assertNoInterfaceFields(t, reflect.TypeOf(Card{}))
	assertNoInterfaceFields(t, reflect.TypeOf(CardDetail{}))
	assertNoInterfaceFields(t, reflect.TypeOf(Comment{}))
	assertNoInterfaceFields(t, reflect.TypeOf(Filter{}))
}

func assertNoInterfaceFields(t *testing.T, typ reflect.Type) {
	t.Helper()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldType := field.Type

		if field.Anonymous {
			assertNoInterfaceFields(t, fieldType)
			continue
		}

		switch fieldType.Kind() {
		case reflect.Interface:
			t.Fatalf("field %s in %s must not be interface type", field.Name, typ.Name())
		case reflect.Struct:
			assertNoInterfaceFields(t, fieldType)
		case reflect.Slice, reflect.Array:
			if fieldType.Elem().Kind() == reflect.Interface {
				t.Fatalf("field %s in %s must not contain interface elements", field.Name, typ.Name())
			}
			if fieldType.Elem().Kind() == reflect.Struct {
				assertNoInterfaceFields(t, fieldType.Elem())
			}
		}
	}
}
