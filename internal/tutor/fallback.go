package tutor

import "strings"

// WelcomeMessage opens every tutoring session.
const WelcomeMessage = `# Welcome to Deep Study Mode! 🎓

I'm your AI tutor, ready to help you master JEE concepts. Here's what I can do:

**📚 Study Support**
- Explain complex concepts in simple terms
- Break down difficult problems step by step
- Create personalized study plans
- Generate practice questions

**🖼️ Image Problem Solving**
- Upload images of problems from textbooks
- Get detailed solutions with explanations
- Understand diagram-based questions

**🎯 Personalized Learning**
- Adapt to your learning pace
- Focus on your weak areas
- Provide targeted practice

**How would you like to start your study session today?**

You can:
- Ask me to explain any JEE topic
- Upload an image of a problem you're stuck on
- Request a study plan for specific subjects
- Ask for practice questions on any topic

What would you like to study first?`

// ImageFallbackReply is returned when an image problem can't be
// processed by the backend.
const ImageFallbackReply = `I can see you've uploaded an image. While I can't process the image right now, I'd be happy to help you with the problem if you can describe it to me or type out the question.

Here's how I typically approach problem-solving:

1. **Identify the concept** - What topic does this problem cover?
2. **List the given information** - What data do we have?
3. **Determine what to find** - What is the question asking for?
4. **Choose the right formula/method** - Which approach should we use?
5. **Solve step by step** - Work through the solution methodically
6. **Verify the answer** - Check if the result makes sense

Please describe the problem, and I'll help you solve it step by step!`

// FallbackReply picks a canned tutoring reply keyed on the student's
// message when the backend is unreachable.
func FallbackReply(input string) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "physics"):
		return physicsReply
	case strings.Contains(lower, "chemistry"):
		return chemistryReply
	case strings.Contains(lower, "math"):
		return mathReply
	case strings.Contains(lower, "study plan"), strings.Contains(lower, "preparation"):
		return studyPlanReply
	default:
		return genericReply
	}
}

const physicsReply = `# Physics Help 📐

I'd be happy to help you with Physics! Physics is one of the most important subjects for JEE, covering:

**Major Topics:**
- Mechanics (Kinematics, Dynamics, Energy)
- Thermodynamics
- Optics and Waves
- Electricity and Magnetism
- Modern Physics

What specific physics topic would you like to explore? I can:
- Explain concepts with examples
- Help solve numerical problems
- Provide practice questions
- Create study plans

Just let me know what you'd like to focus on!`

const chemistryReply = `# Chemistry Help ⚗️

Chemistry is fascinating! Let me help you master it for JEE:

**Key Areas:**
- Physical Chemistry (Thermodynamics, Kinetics)
- Organic Chemistry (Reactions, Mechanisms)
- Inorganic Chemistry (Periodic Properties, Compounds)

**How I can help:**
- Break down complex reactions
- Explain mechanisms step by step
- Help with numerical problems
- Provide memory techniques

What chemistry topic interests you today?`

const mathReply = `# Mathematics Help 📊

Mathematics is the foundation of JEE success! I'm here to help with:

**Core Topics:**
- Algebra and Number Theory
- Calculus (Limits, Derivatives, Integrals)
- Coordinate Geometry
- Trigonometry
- Probability and Statistics

**My approach:**
- Step-by-step solutions
- Multiple solving methods
- Conceptual understanding
- Practice problem generation

Which mathematical concept would you like to work on?`

const studyPlanReply = `# Study Plan Creation 📅

I'll help you create an effective JEE study plan! Here's my approach:

**Assessment Phase:**
1. Current preparation level
2. Strengths and weaknesses
3. Available time until exam
4. Preferred study methods

**Plan Components:**
- Daily/weekly schedule
- Topic-wise allocation
- Practice and revision cycles
- Mock test schedule

**To create your personalized plan, tell me:**
- How much time do you have for preparation?
- Which subjects need more focus?
- What's your current preparation level?
- Any specific challenges you're facing?

Let's build a plan that works for you!`

const genericReply = `# I'm Here to Help! 🎓

Thank you for your question! While I'm processing your request, here are some ways I can assist you:

**📚 Subject Help**
- Physics, Chemistry, Mathematics
- Concept explanations
- Problem solving
- Formula derivations

**🎯 Study Support**
- Personalized study plans
- Practice questions
- Revision strategies
- Exam tips

**🔍 Problem Solving**
- Step-by-step solutions
- Multiple approaches
- Conceptual understanding
- Common mistake prevention

Could you be more specific about what you'd like help with? I'm ready to dive deep into any JEE topic with you!`
