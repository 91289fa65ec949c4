package responder

// Static replies for the explainer intents and the two fallbacks.
// The fallback formats take the raw utterance.

const helpGettingStarted = `To get started:

1. Type **/analyze <path-to-report.pdf>** to analyze a well completion report
2. Wait for the analysis to complete
3. Ask me questions about the results!

I support standard well completion reports with tables and technical data.`

const explainExtraction = `I can extract many parameters from well documents:

**Basic Info:** Well name, operation type, dates, duration
**Depths:** Packer, PBR, pump intake, total depth
**Equipment:** Tubing size, ESP details, completion config
**Reservoir:** Temperature, fluid type, pressure
**Production:** Flow rates, pressures, fluid properties
**Safety:** HSE incidents, operational notes

Analyze a document to see what I can extract!`

const explainNodalAnalysis = `**Nodal Analysis** determines well production capacity by analyzing pressure relationships.

I calculate:
- **Pressure Distribution:** From reservoir to wellhead
- **Flow Characteristics:** Reynolds number, flow regime, friction
- **Productivity:** Current vs maximum potential
- **Bottlenecks:** What's limiting production

Analyze a document and I'll perform the analysis automatically!`

const needsUploadFmt = `I understand you're asking: *"%s"*

Please analyze a well report first so I can help you. Use **/analyze <path>** to get started.`

const fallbackMenuFmt = `I understand you're asking: *"%s"*

I can help you with:
- Show extracted parameters
- Explain nodal analysis results
- Provide optimization suggestions
- Identify production limitations
- Export the full report

Try asking: **"What are the nodal results?"** or **"How can we optimize production?"**`

const needAnalysisForAdvice = "I need successful nodal analysis results to provide optimization advice."

const needAnalysisForLimits = "I need successful nodal analysis results to identify limitations."

// Greeting is the assistant message every new session starts with
const Greeting = `**Hello! I'm your Well Analysis Assistant.**

I can help you with:
- Analyzing well completion reports (PDF)
- Extracting parameters from documents
- Performing automated nodal analysis
- Generating summaries and reports
- Answering questions about your wells

Type **/analyze <path>** to get started!`
