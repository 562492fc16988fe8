package prompt

import (
	"strings"
	"testing"
)

func TestCoursePlan(t *testing.T) {
	got := CoursePlan("5", "Python, SQL", "Data Engineer")

	want := "Create a personalized learning plan for a user with the following profile: " +
		"Years of Experience: 5. " +
		"Current Tech Stack: Python, SQL. " +
		"Aspiring to be a: Data Engineer. " +
		"The plan should be structured into weekly modules, with specific, actionable tasks for each week. " +
		"Return the output as a clean JSON object without any surrounding text or markdown formatting."
	if got != want {
		t.Errorf("CoursePlan() = %q, want %q", got, want)
	}
}

func TestTopicContent(t *testing.T) {
	got := TopicContent("React Basics", "Hooks")

	// Topic comes first in the template, course second.
	if !strings.Contains(got, "learning content for the topic 'Hooks'") {
		t.Errorf("expected topic title in prompt, got %q", got)
	}
	if !strings.Contains(got, "part of the course 'React Basics'") {
		t.Errorf("expected course title in prompt, got %q", got)
	}
	if !strings.HasSuffix(got, "without any surrounding text or markdown formatting.") {
		t.Errorf("expected clean-JSON instruction suffix, got %q", got)
	}
}

func TestTopicQuiz(t *testing.T) {
	got := TopicQuiz("React Basics", "State Management")

	if !strings.Contains(got, "3-question multiple-choice quiz about the React topic 'State Management' from the course 'React Basics'") {
		t.Errorf("quiz prompt missing topic/course placement, got %q", got)
	}
	for _, key := range []string{"'questions'", "'question'", "'options'", "'answer'"} {
		if !strings.Contains(got, key) {
			t.Errorf("quiz prompt missing %s key instruction", key)
		}
	}
}

func TestChatbotAnswer(t *testing.T) {
	got := ChatbotAnswer("What is a goroutine?")

	if !strings.Contains(got, "following question: 'What is a goroutine?'") {
		t.Errorf("expected query embedded in prompt, got %q", got)
	}
	if !strings.Contains(got, "single key 'answer'") {
		t.Errorf("expected answer-key instruction, got %q", got)
	}
}
