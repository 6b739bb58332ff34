package generation_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"wanderly/pkg/utils"
)

func TestProvideTextGenerator_GeminiClosedOnStop(t *testing.T) {
	t.Setenv("GENERATION_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("GEMINI_BASE_URL", "http://127.0.0.1:1")

	var generator utils.TextGenerator
	app := fxtest.New(t,
		fx.Provide(ProvideTextGenerator),
		fx.Populate(&generator),
	)
	app.RequireStart().RequireStop()

	assert.Equal(t, "Gemini API", generator.Provider())
}

func TestProvideTextGenerator_HuggingFaceByDefault(t *testing.T) {
	t.Setenv("GENERATION_PROVIDER", "")
	t.Setenv("HF_TOKEN", "hf-test")

	var generator utils.TextGenerator
	app := fxtest.New(t,
		fx.Provide(ProvideTextGenerator),
		fx.Populate(&generator),
	)
	app.RequireStart().RequireStop()

	_, isGemini := generator.(*utils.GeminiTextClient)
	assert.False(t, isGemini)
	assert.Equal(t, "Hugging Face API", generator.Provider())
}
