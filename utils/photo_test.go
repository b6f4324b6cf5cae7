package utils

import "testing"

func TestNormalizePhotoPath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{"strips upload root", "public/1700000000-house.jpg", "1700000000-house.jpg"},
		{"keeps nested segments", "public/listings/a.png", "listings/a.png"},
		{"path without prefix unchanged", "uploads/a.png", "uploads/a.png"},
		{"already relative", "a.png", "a.png"},
		{"prefix only in the middle", "x/public/a.png", "x/public/a.png"},
		{"repeated prefix", "public/public/a.png", "a.png"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePhotoPath(tc.path, "public/"); got != tc.want {
				t.Errorf("NormalizePhotoPath(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestNormalizePhotoPathIsIdempotent(t *testing.T) {
	paths := []string{
		"public/a.jpg",
		"public/public/b.jpg",
		"c.jpg",
		"public/",
		"publicity/d.jpg",
	}
	for _, p := range paths {
		once := NormalizePhotoPath(p, "public/")
		twice := NormalizePhotoPath(once, "public/")
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", p, once, twice)
		}
	}
}

func TestNormalizePhotoPaths(t *testing.T) {
	got := NormalizePhotoPaths([]string{"public/a.jpg", "public/b.jpg"}, "public/")
	if len(got) != 2 || got[0] != "a.jpg" || got[1] != "b.jpg" {
		t.Fatalf("unexpected refs %v", got)
	}
}

func TestPhotoURL(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"http://localhost:8080/public", "a.jpg", "http://localhost:8080/public/a.jpg"},
		{"http://localhost:8080/public/", "/a.jpg", "http://localhost:8080/public/a.jpg"},
		{"", "a.jpg", "a.jpg"},
	}
	for _, tc := range cases {
		if got := PhotoURL(tc.base, tc.ref); got != tc.want {
			t.Errorf("PhotoURL(%q, %q) = %q, want %q", tc.base, tc.ref, got, tc.want)
		}
	}
}
