package generator

// Prompt 每次运行发送的固定提示词。
const Prompt = `
  Write a detailed, SEO-optimized affiliate blog post recommending a trending product.
  Include a catchy title, engaging intro, product benefits, and call-to-action.
  Format with Markdown headings.
  `
