package checkers

import (
	"testing"
)

func TestAllCheckers_PipelineOrder(t *testing.T) {
	all := AllCheckers()

	want := []string{"topology", "routes", "probe"}
	if len(all) != len(want) {
		t.Fatalf("AllCheckers() = %d checkers, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name() != name {
			t.Errorf("checker %d = %q, want %q", i, all[i].Name(), name)
		}
	}
}

func TestGetChecker(t *testing.T) {
	if c := GetChecker("routes"); c == nil || c.Name() != "routes" {
		t.Errorf("GetChecker(routes) = %v", c)
	}
	if c := GetChecker("missing"); c != nil {
		t.Errorf("GetChecker(missing) = %v, want nil", c)
	}
}

func TestResolve_ExpandsDependencies(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "probe pulls topology and routes",
			names: []string{"probe"},
			want:  []string{"topology", "routes", "probe"},
		},
		{
			name:  "routes pulls topology",
			names: []string{"routes"},
			want:  []string{"topology", "routes"},
		},
		{
			name:  "topology stands alone",
			names: []string{"topology"},
			want:  []string{"topology"},
		},
		{
			name:  "duplicates collapse",
			names: []string{"probe", "routes", "probe"},
			want:  []string{"topology", "routes", "probe"},
		},
		{
			name:  "unknown names ignored",
			names: []string{"bogus"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := Resolve(tt.names)

			var got []string
			for _, c := range selected {
				got = append(got, c.Name())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Resolve(%v) = %v, want %v", tt.names, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Resolve(%v) = %v, want %v", tt.names, got, tt.want)
					break
				}
			}
		})
	}
}
