package rankings

import "testing"

func TestBuildRowsResolvesColumns(t *testing.T) {
	entries := ExtractRankEntries(doc(t, `{"ranks":[
		{"current":1,"previous":3,"recordSummary":"9-0","team":{"id":"194","location":"Ohio State","name":"Ohio State","logos":[{"href":"osu.png","rel":["default"]}]}},
		{"rank":"2","previousRank":1,"record":{"summary":"8-1"},"team":{"location":"Texas","name":"Longhorns"}},
		{"team":{"location":"Indiana","name":"Hoosiers"},"record":"9-1"},
		{"current":4,"team":{"location":"Miami"}}
	]}`))

	rows := BuildRows(entries, RowOptions{TopN: 3, ShowRecord: true, ShowMovement: true})
	if len(rows) != 3 {
		t.Fatalf("expected top 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Rank != "1" || first.School != "Ohio State" || first.Nickname != "" || first.Logo != "osu.png" || first.Record != "9-0" {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.Movement != MovementUp || first.MovementDelta != 2 {
		t.Fatalf("expected up 2, got %s %d", first.Movement, first.MovementDelta)
	}

	second := rows[1]
	if second.Rank != "2" || second.Nickname != "Longhorns" || second.Record != "8-1" {
		t.Fatalf("unexpected second row %+v", second)
	}
	if second.Movement != MovementDown || second.MovementDelta != 1 {
		t.Fatalf("expected down 1, got %s %d", second.Movement, second.MovementDelta)
	}

	third := rows[2]
	if third.Rank != NoRank {
		t.Fatalf("expected missing rank shown as %q, got %q", NoRank, third.Rank)
	}
	if third.Record != "9-1" || third.Movement != "" {
		t.Fatalf("unexpected third row %+v", third)
	}
}

func TestBuildRowsHidesRecordAndMovement(t *testing.T) {
	entries := ExtractRankEntries(doc(t, `{"ranks":[{"current":5,"previous":9,"recordSummary":"6-1","team":{"location":"Iowa"}}]}`))
	rows := BuildRows(entries, RowOptions{TopN: 25})
	if rows[0].Record != "" || rows[0].Movement != "" {
		t.Fatalf("expected record and movement suppressed, got %+v", rows[0])
	}
}

func TestMovementIgnoresUnrankedPrevious(t *testing.T) {
	entries := ExtractRankEntries(doc(t, `{"ranks":[
		{"current":20,"previous":0,"team":{}},
		{"current":7,"previous":7,"team":{}}
	]}`))
	rows := BuildRows(entries, RowOptions{TopN: 25, ShowMovement: true})
	for _, r := range rows {
		if r.Movement != "" {
			t.Fatalf("expected no movement, got %+v", r)
		}
	}
}

func TestClampTopN(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 20: 20, 25: 25, 40: 25}
	for in, want := range cases {
		if got := ClampTopN(in); got != want {
			t.Fatalf("expected %d for %d, got %d", want, in, got)
		}
	}
}

func TestBuildRankMapPrefersCFP(t *testing.T) {
	d := doc(t, `{"rankings":[
		{"name":"AP Top 25","shortName":"AP Poll","type":"ap","date":"2024-11-10T00:00Z","ranks":[{"current":1,"team":{"id":"2"}}]},
		{"name":"College Football Playoff Rankings","shortName":"CFP","date":"2024-11-05T00:00Z","ranks":[
			{"current":3,"team":{"id":"87"}},
			{"current":26,"team":{"id":"99"}},
			{"current":"x","team":{"id":"98"}},
			{"current":4,"team":{}}
		]}
	]}`)
	m := BuildRankMap(d)
	if m.Label != "CFP" || m.RawDate != "2024-11-05T00:00Z" {
		t.Fatalf("expected CFP label and date, got %+v", m)
	}
	if r, ok := m.Rank("87"); !ok || r != 3 {
		t.Fatalf("expected rank 3 for 87, got %d %v", r, ok)
	}
	if _, ok := m.Rank("99"); ok {
		t.Fatalf("expected rank outside 1..25 excluded")
	}
	if len(m.Ranks) != 1 {
		t.Fatalf("expected one ranked team, got %v", m.Ranks)
	}
}

func TestBuildRankMapFallsBackToAPThenEmpty(t *testing.T) {
	d := doc(t, `{"rankings":[{"name":"AP Top 25","type":"ap","ranks":[{"rank":2,"team":{"id":5}}]}]}`)
	m := BuildRankMap(d)
	if r, _ := m.Rank("5"); r != 2 || m.Label != "AP Top 25" {
		t.Fatalf("expected AP fallback, got %+v", m)
	}

	empty := BuildRankMap(doc(t, `{"rankings":[{"name":"AFCA Coaches Poll"}]}`))
	if !empty.Empty() {
		t.Fatalf("expected empty rank map, got %+v", empty)
	}
}
