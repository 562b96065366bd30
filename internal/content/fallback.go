package content

import "fmt"

// FallbackLearn builds the static study material shown when the backend
// cannot generate content for a topic.
func FallbackLearn(subject, chapter, topic string) string {
	return fmt.Sprintf(`# %[1]s

## Introduction

%[1]s is an important concept in %[2]s. This topic falls under the chapter "%[3]s" and is fundamental for understanding advanced concepts.

## Key Concepts

1. **Definition**: Understanding the basic definition and scope
2. **Applications**: Real-world applications and examples
3. **Mathematical Formulations**: Key equations and relationships
4. **Problem Solving**: Step-by-step approach to solving problems

## Important Points

- Always start with basic principles
- Practice numerical problems regularly
- Understand the conceptual foundation
- Apply concepts to solve real-world problems

## Examples

Here are some solved examples to help you understand the concept better:

**Example 1:** Basic application of %[1]s

*Solution:* Step-by-step solution would go here...

## Practice Problems

1. Solve the following problem related to %[1]s
2. Apply the concept to find the solution
3. Verify your answer using alternative methods`, topic, subject, chapter)
}

// FallbackRevise builds the static quick-revision notes for a topic.
func FallbackRevise(topic string) string {
	return fmt.Sprintf(`# %[1]s - Quick Revision

## Key Formulas

- Formula 1: Key equation for %[1]s
- Formula 2: Alternative form or special case
- Formula 3: Related concept equation

## Important Points

✓ **Remember**: Critical concept to memorize
✓ **Note**: Common mistake to avoid
✓ **Tip**: Problem-solving strategy

## Quick Facts

- Fact 1 about %[1]s
- Fact 2 about applications
- Fact 3 about related concepts

## Common Questions

1. **Q**: What is the main principle of %[1]s?
   **A**: Brief answer explaining the core concept

2. **Q**: How is this applied in JEE problems?
   **A**: Explanation of typical problem patterns

## Last-Minute Tips

- Focus on understanding rather than memorizing
- Practice numerical problems
- Review solved examples
- Check units and dimensions in calculations`, topic)
}
