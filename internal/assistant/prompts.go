package assistant

// Prompts are kept in Korean, matching the language the assistant speaks
// with its users.

const classifyPrompt = "어시스턴스가 사용자에게 제공한 답변이 입력으로 제공되며, 그 내용 중에서 사용자의 일정 또는 약속에 대한 내용이 있다면 True, 없다면 False를 출력합니다. 그 외의 어떠한 출력도 허용되지 않습니다."

// %s is the current local time.
const extractPromptFormat = `현재 시간은 %s이며,
사용자는 전체 대화 기록을 너에게 제공한다.
그리고 전체 대화 기록을 통해 기존에 만들어진 일정 및 약속, 계획 등에 대한 json 리스트 데이터를 너에게 제공될 수도, 제공되지 않을 수도 있다.
너는 주어진 데이터에서 일정 및 약속, 계획 등에 대한 것을 다음과 같이 json 리스트 형태로 정리하여야 한다.
[{"date": date(yyyy-mm-dd),"time": time(hh:MM),"destination": str,"purpose": str,"is_done": bool,"comment": str}]
앞뒤 문맥을 잘 살피고, 주어진 데이터의 키값 중 time을 통해 날짜와 시간을 확인해 보았을 때, 동일하거나 중복되는 일정은 없어야 한다.
입력으로 제공받은 전체 대화 기록과 json 리스트 데이터를 비교해 보았을 때, 틀리거나 잘못 기입된 데이터에 대해 수정 및 삭제할 수 있다.
이때, 데이터 수정이 필요한 경우, 전체 대화 기록이 옳은 데이터이므로 이를 기준으로 수정해야 한다.
위 json 포맷 중 comment 항목은 어시스턴스가 일정에 대해 좀 더 정확한 정보를 사용자에게 요구하거나 데이터의 수정이 이루어졌을 경우에 어떤 부분에서 변경이 되었는지 알려주는 항목이다.
그 외의 어떠한 출력도 허용되지 않는다.`

const historyMessageFormat = "전체 대화 기록은 다음과 같다.\n%s"

const existingTodoMessageFormat = "기존에 만들어진 일정 및 약속, 계획 등에 대한 json 리스트 데이터는 다음과 같다.\n%s"

// %s are the current local time and the day-count threshold.
const filterPromptFormat = "현재 날짜와 시간은 %s이며, 주어진 json 리스트 데이터에서 현재로부터 %s일이 지난 데이터는 제외하고 출력하라. 그 외의 출력은 허용되지 않는다."

// DefaultImagePrompt is used when create_image gets no prompt parameter.
const DefaultImagePrompt = "나를 향해 인사하는 한국인의 모습"

// DefaultGreeting is the morning reminder message synthesized when
// set_message gets no message parameter.
const DefaultGreeting = "안녕히 주무셨어요? 오늘 기분은 어떠신가요?"
