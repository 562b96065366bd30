package studyplan

import (
	"strings"
	"time"

	"github.com/praxisprep/praxis/internal/api"
)

// WelcomeMessage opens every planning session.
const WelcomeMessage = `# Welcome to Deep Study Plan! 📚

I'm your AI study planner, ready to create personalized JEE preparation plans based on your specific needs and goals.

**🎯 What I can help you with:**

**📋 Personalized Study Plans**
- Custom schedules based on your timeline
- Subject-wise focus areas
- Goal-oriented milestones
- Weakness-driven preparation

**📊 Smart Planning**
- Time management strategies
- Revision cycles
- Mock test schedules
- Progress tracking

**💬 Interactive Planning**
- Chat-based plan creation
- Real-time adjustments
- Continuous feedback
- Plan refinements

**To get started, tell me about:**
- How much time you have for JEE preparation?
- Which subjects need more focus (Physics, Chemistry, Mathematics)?
- Your current preparation level (beginner, intermediate, advanced)?
- Specific topics you find challenging?
- Your target JEE score or rank?
- Any specific study preferences or constraints?

Let's create a study plan that's perfect for you! 🚀`

// FallbackReply picks a canned planning reply keyed on the student's
// message when the backend is unreachable.
func FallbackReply(input string) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "time"), strings.Contains(lower, "schedule"):
		return timeReply
	case strings.Contains(lower, "weak"), strings.Contains(lower, "difficult"), strings.Contains(lower, "challenging"):
		return weakAreaReply
	case strings.Contains(lower, "rank"), strings.Contains(lower, "score"), strings.Contains(lower, "target"):
		return targetReply
	default:
		return genericReply
	}
}

// FallbackPlan is the static plan used when the backend can't generate
// one from the conversation.
func FallbackPlan(now time.Time) api.StudyPlan {
	return api.StudyPlan{
		Title:       "Comprehensive JEE Preparation Plan",
		Description: "A balanced approach to JEE preparation covering all subjects with focus on problem-solving and concept clarity.",
		Duration:    "6 months",
		Subjects:    []string{"Physics", "Chemistry", "Mathematics"},
		Goals: []string{
			"Master fundamental concepts",
			"Develop problem-solving skills",
			"Achieve target rank",
			"Build exam temperament",
		},
		Schedule: []api.WeekPlan{
			{
				Week:   1,
				Topics: []string{"Mechanics basics", "Atomic structure", "Coordinate geometry"},
				Goals:  []string{"Foundation building", "Concept clarity"},
			},
			{
				Week:   2,
				Topics: []string{"Thermodynamics", "Chemical bonding", "Trigonometry"},
				Goals:  []string{"Problem solving", "Application practice"},
			},
			{
				Week:   3,
				Topics: []string{"Waves and optics", "Periodic table", "Calculus basics"},
				Goals:  []string{"Advanced concepts", "Integration skills"},
			},
			{
				Week:   4,
				Topics: []string{"Revision week", "Mock tests", "Weak area focus"},
				Goals:  []string{"Assessment", "Gap analysis"},
			},
		},
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

const timeReply = `# Time Management for JEE Preparation ⏰

Based on your available time, here's a general approach:

**📅 Daily Schedule Template:**
- **Morning (2-3 hours)**: Fresh mind for Mathematics
- **Afternoon (2-3 hours)**: Physics concepts and problems
- **Evening (2-3 hours)**: Chemistry theory and reactions
- **Night (1 hour)**: Revision and quick recap

**🗓️ Weekly Pattern:**
- **Monday-Tuesday**: Focus on weak subjects
- **Wednesday-Thursday**: Balanced approach
- **Friday**: Revision and problem solving
- **Saturday**: Mock tests and analysis
- **Sunday**: Light revision and planning

Could you tell me your specific available hours per day so I can create a more detailed plan?`

const weakAreaReply = `# Addressing Weak Areas 🎯

Let me help you strengthen your weak subjects:

**🔍 Assessment Strategy:**
1. Take diagnostic tests for each subject
2. Identify specific topics causing trouble
3. Analyze error patterns
4. Create targeted practice plans

**📚 Subject-wise Approaches:**

**Physics**: Start with concept clarity, then numerical practice
**Chemistry**: Focus on NCERT, then advanced problems
**Mathematics**: Practice diverse problem types daily

**💪 Improvement Plan:**
- Dedicate 40% time to weak areas
- 30% to moderate areas
- 30% to strong areas for maintenance

Which specific subjects or topics are you finding most challenging? I'll create a targeted improvement plan for you.`

const targetReply = `# Target-Based Study Planning 🎯

Let me help you create a goal-oriented study plan:

**🏆 Rank-wise Preparation Strategy:**

**Top 1000 Rank:**
- 8-10 hours daily study
- Advanced problem solving
- Multiple mock tests weekly
- Regular performance analysis

**Top 5000 Rank:**
- 6-8 hours daily study
- Strong NCERT foundation
- Regular practice tests
- Focused weak area improvement

**Top 10000 Rank:**
- 5-6 hours daily study
- Solid concept building
- Weekly mock tests
- Consistent revision

What's your target rank or score? I'll create a specific strategy to help you achieve it!`

const genericReply = `# Let's Create Your Perfect Study Plan! 📋

Thank you for sharing that information! To create the most effective study plan for you, I need to understand your situation better.

**🤔 Help me understand:**

**Time Assessment:**
- How many hours can you dedicate daily?
- How many months until your JEE exam?
- Any specific time constraints?

**Current Level:**
- Which topics are you comfortable with?
- What subjects need the most work?
- Have you taken any practice tests?

**Goals & Preferences:**
- Target rank or percentile?
- Preferred study methods?
- Any coaching classes or resources you're using?

The more details you share, the better I can tailor your study plan. What would you like to focus on first?`
