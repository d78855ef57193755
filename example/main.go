// FILE: lixenwraith/classkit/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/classkit"
)

const themeFilePath = "theme.toml"

const initialTheme = `
[colors]
brand = "#FF8800"

[classes]
card = { padding = 1, borderStyle = "rounded" }
`

const updatedTheme = `
[colors]
brand = "#00AAFF"

[classes]
card = { padding = 2, borderStyle = "double" }
`

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating initial theme file...")

	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.Remove(themeFilePath)
		os.Unsetenv("APP_COLORS_ACCENT")
	}()

	if err := os.WriteFile(themeFilePath, []byte(initialTheme), 0644); err != nil {
		log.Fatalf("❌ Failed during initial file creation: %v", err)
	}

	// =========================================================================
	// PART 2: BUILDER WITH FILE, ENVIRONMENT AND VALIDATION
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Configuring engine with the Builder...")

	os.Setenv("APP_COLORS_ACCENT", "#C678DD")

	validator := func(e *classkit.Engine) error {
		if !e.Has("bgBrand") {
			return fmt.Errorf("theme is missing the brand color")
		}
		return nil
	}

	kit, err := classkit.NewBuilder().
		WithFile(themeFilePath).
		WithEnvPrefix("APP_").
		WithViewport(classkit.FixedWidth(60)).
		WithValidator(validator).
		Build()
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}

	printState(kit, "Initial State")

	// =========================================================================
	// PART 3: LIVE RELOAD WITH THE WATCHER
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Testing the theme watcher...")

	opts := classkit.WatchOptions{
		PollInterval: 250 * time.Millisecond,
		Debounce:     100 * time.Millisecond,
	}
	if err := kit.WatchFileWithOptions(themeFilePath, opts); err != nil {
		log.Fatalf("❌ Watch failed: %v", err)
	}
	defer kit.StopWatch()
	changes := kit.Subscribe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(time.Second)
		if err := os.WriteFile(themeFilePath, []byte(updatedTheme), 0644); err != nil {
			log.Printf("❌ Modifier failed: %v", err)
		}
	}()

	select {
	case path := <-changes:
		log.Printf("✅ Watcher detected a change for path: '%s'", path)
		if got := kit.Resolve("bgBrand")["backgroundColor"]; got != "#00AAFF" {
			log.Fatalf("❌ VERIFICATION FAILED: expected #00AAFF, got %v", got)
		}
		printState(kit, "Final State (Updated by Watcher)")
	case <-time.After(5 * time.Second):
		log.Fatalf("❌ TEST FAILED: Timed out waiting for watcher notification.")
	}

	wg.Wait()
}

func printState(kit *classkit.Engine, title string) {
	log.Printf("   --- %s ---", title)
	log.Printf("   bgBrand:  %s", kit.Resolve("bgBrand"))
	log.Printf("   bgAccent: %s", kit.Resolve("bgAccent"))
	log.Printf("   card:     %s", kit.Resolve("card"))
	fmt.Println(kit.Render("card", "bgBrand", "textWhite").Render("classkit"))
}
