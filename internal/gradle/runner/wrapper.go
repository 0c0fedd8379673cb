package runner

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// WrapperGradleVersion is the Gradle version of the bundled wrapper
// properties. A regenerated wrapper is pinned to it.
const WrapperGradleVersion = "8.12"

// wrapperMainClass is the entry point gradlew starts from the wrapper jar.
const wrapperMainClass = "org/gradle/wrapper/GradleWrapperMain.class"

// wrapperJarUsable reports whether the jar at path can start the wrapper.
// A missing file or an archive without the main class is not usable.
func wrapperJarUsable(path string) (bool, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if errors.Is(err, zip.ErrFormat) {
			return false, nil
		}
		return false, fmt.Errorf("open wrapper jar: %w", err)
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if f.Name == wrapperMainClass {
			return true, nil
		}
	}
	return false, nil
}

// bootstrapTasks prefixes tasks with the wrapper task so one global Gradle
// run regenerates the wrapper and then runs the requested tasks.
func bootstrapTasks(tasks []string) []string {
	out := make([]string, 0, len(tasks)+3)
	out = append(out, "wrapper", "--gradle-version", WrapperGradleVersion)
	return append(out, tasks...)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
