// Package prompt renders the natural-language prompts sent to the managed
// agents. The wording is part of the contract with the deployed agents:
// each template pins the response shape the handlers relay back to the
// front end, so changes here change what callers receive.
package prompt

import "fmt"

const (
	coursePlanFormat = "Create a personalized learning plan for a user with the following profile: " +
		"Years of Experience: %s. " +
		"Current Tech Stack: %s. " +
		"Aspiring to be a: %s. " +
		"The plan should be structured into weekly modules, with specific, actionable tasks for each week. " +
		"Return the output as a clean JSON object without any surrounding text or markdown formatting."

	topicContentFormat = "Generate detailed learning content for the topic '%s' " +
		"which is part of the course '%s'. The content should include " +
		"a detailed explanation, hyperlinks to relevant external resources, " +
		"and indicate if a quiz should follow the content. Return the output as a clean JSON object " +
		"without any surrounding text or markdown formatting."

	topicQuizFormat = "Act as a senior software engineering instructor. Create a 3-question multiple-choice quiz " +
		"about the React topic '%s' from the course '%s'. " +
		"Use your internal knowledge to generate the questions and answers. " +
		"The response must be a clean JSON object with a single key 'questions'. " +
		"The value of 'questions' should be an array of objects. Each object should have: " +
		"1. A 'question' key with the question text (string). " +
		"2. An 'options' key with an array of 4 string options. " +
		"3. An 'answer' key with the string of the correct option. " +
		"Do not include any other text or markdown formatting in the response."

	chatbotAnswerFormat = "You are an expert AI learning assistant for software developers. A student has asked the " +
		"following question: '%s'. Provide a clear, helpful, and concise answer. " +
		"Return the response as a clean JSON object with a single key 'answer' which contains your text response. " +
		"Do not include any other text or markdown formatting."
)

// CoursePlan renders the course creator prompt from a user's profile.
func CoursePlan(experience, techStack, expectedRole string) string {
	return fmt.Sprintf(coursePlanFormat, experience, techStack, expectedRole)
}

// TopicContent renders the trainer prompt for a topic's learning content.
func TopicContent(courseTitle, topicTitle string) string {
	return fmt.Sprintf(topicContentFormat, topicTitle, courseTitle)
}

// TopicQuiz renders the trainer prompt for a 3-question multiple-choice quiz.
func TopicQuiz(courseTitle, topicTitle string) string {
	return fmt.Sprintf(topicQuizFormat, topicTitle, courseTitle)
}

// ChatbotAnswer renders the trainer prompt for a free-form student question.
func ChatbotAnswer(query string) string {
	return fmt.Sprintf(chatbotAnswerFormat, query)
}
