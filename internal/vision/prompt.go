package vision

// Prompt is the fixed instruction sent with every terrain image. It is a
// constant, not user-configurable: the response parser depends on the six
// field names requested here.
const Prompt = `Analyze this terrain image for flood risk assessment.

Please provide:
1. Risk Level (Low/Medium/High/Very High)
2. Description of the risk based on what you see
3. 3-5 specific recommendations
4. Estimated elevation in meters
5. Estimated distance from water bodies in meters
6. What water bodies or flood risks you can identify in the image

Format your response as JSON with these fields:
- risk_level
- description
- recommendations (array of strings)
- elevation (number)
- distance_from_water (number)
- image_analysis (string describing what you see)`
