package content

import "github.com/abhisek/shiseikan/internal/trait"

var (
	fate      = trait.Pair{trait.Fatalism, trait.FreeWill}
	spirit    = trait.Pair{trait.Spiritualism, trait.Materialism}
	stance    = trait.Pair{trait.Acceptance, trait.Resistance}
	belonging = trait.Pair{trait.Individualism, trait.Communalism}
)

// DemoQuestions is a fixed twelve-question set used by the mock provider.
func DemoQuestions() []Question {
	return []Question{
		{Text: "When something important happens to you, do you feel it was meant to be, or that you made it happen?", Pair: fate},
		{Text: "Is the length of a life something we receive, or something we can meaningfully extend by our choices?", Pair: fate},
		{Text: "Looking back on a turning point, do you see a hidden path that led you there, or a series of your own decisions?", Pair: fate},
		{Text: "Do you believe some part of a person continues after death, or that a life is complete in itself?", Pair: spirit},
		{Text: "When you grieve, do you seek comfort in something unseen, or in memories and the people still here?", Pair: spirit},
		{Text: "Is a meaningful life measured by inner growth of the soul, or by what you leave behind in the world?", Pair: spirit},
		{Text: "If you learned your time was short, would you make peace with it, or fight for every extra day?", Pair: stance},
		{Text: "Is aging something to welcome as it comes, or something to resist as long as possible?", Pair: stance},
		{Text: "When a loved one is dying, is it kinder to let go, or to try everything to hold on?", Pair: stance},
		{Text: "Should the way you face death be entirely your own decision, or shaped by family and community?", Pair: belonging},
		{Text: "Is your life's meaning something you define alone, or something found in your bonds with others?", Pair: belonging},
		{Text: "Would you rather be remembered for who you were as a person, or for what you gave to those around you?", Pair: belonging},
	}
}

// NewDemoProvider returns a StaticProvider serving DemoQuestions.
func NewDemoProvider() *StaticProvider {
	return NewStaticProvider(DemoQuestions())
}
