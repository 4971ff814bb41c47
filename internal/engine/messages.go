package engine

// Canned reply texts. The engine guarantees a textual reply for every input,
// so every code path below ends in one of these.

const welcomeMessage = `Hello! Welcome to TalentScout!

I'm your Hiring Assistant, and I'm here to help with your initial screening process. I'll be gathering some basic information about you and asking a few technical questions based on your expertise.

This should take about 5-10 minutes, and it will help our recruitment team better understand your background and skills.

To get started, could you please tell me your full name?`

const closingMessage = `Thank you for your time and interest in TalentScout!

Here's what happens next:
- Your information has been recorded securely
- Our recruitment team will review your responses
- You'll hear back from us within 2-3 business days
- If selected, we'll schedule a detailed interview

Have a great day and good luck with your job search!`

const conclusionMessage = `Excellent! I've completed the initial screening process.

Here's a summary of what we covered:
- Personal information collected
- Technical background assessed
- Your responses have been recorded

Thank you for taking the time to complete this screening. Our recruitment team will review your information and technical responses. You can expect to hear back from us within 2-3 business days.

Is there anything else you'd like to know about TalentScout or the application process?`

const conclusionFarewell = "Thank you for your time! If you have any questions about the process, feel free to ask. Otherwise, have a great day!"

const fallbackMessage = "I'm sorry, I didn't quite understand that. Could you please rephrase your response? I'm here to help with your job application process."

const promptName = "Thank you for your interest! To get started, could you please tell me your full name?"

const techQuestionsIntro = "Now I'd like to ask you some technical questions based on your tech stack. Here's the first question:"
