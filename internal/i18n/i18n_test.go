package i18n

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-US", language.English},
		{"ko", language.Korean},
		{"ko_KR.UTF-8", language.Korean},
		{"fr", language.English},
		{"!!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Match(tt.in); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocalizerText(t *testing.T) {
	en, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := en.Text("gradle.running", "./gradlew build"); got != "Running Gradle: ./gradlew build" {
		t.Errorf("en gradle.running = %q", got)
	}

	ko, err := New("ko-KR")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ko.Tag() != language.Korean {
		t.Errorf("Tag = %v", ko.Tag())
	}
	if got := ko.Text("gradle.wrapper.copied"); got != "Gradle 래퍼를 복사했습니다." {
		t.Errorf("ko gradle.wrapper.copied = %q", got)
	}

	if got := en.Text("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key = %q", got)
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	c, err := LoadFromFS(localeFS)
	if err != nil {
		t.Fatalf("LoadFromFS: %v", err)
	}
	base := c.Keys(BaseLocale)
	if len(base) == 0 {
		t.Fatal("base locale has no keys")
	}
	for _, tag := range Supported() {
		keys := c.Keys(tag)
		if len(keys) != len(base) {
			t.Errorf("%v defines %d keys, base defines %d", tag, len(keys), len(base))
			continue
		}
		for i := range keys {
			if keys[i] != base[i] {
				t.Errorf("%v key %q does not match base key %q", tag, keys[i], base[i])
				break
			}
		}
	}
}

func TestLoadFromFSErrors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{"empty", fstest.MapFS{}},
		{"bad_yaml", fstest.MapFS{"locales/en.yaml": &fstest.MapFile{Data: []byte("locale: [")}}},
		{"bad_locale", fstest.MapFS{"locales/xx.yaml": &fstest.MapFile{Data: []byte("locale: \"!!\"\nmessages:\n  a: b\n")}}},
		{"no_base", fstest.MapFS{"locales/ko.yaml": &fstest.MapFile{Data: []byte("locale: ko\nmessages:\n  a: b\n")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromFS(tt.fs); err == nil {
				t.Error("expected error")
			}
		})
	}
}
